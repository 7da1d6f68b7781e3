// Package main is the AWS Lambda entry point for the word-for-word translator.
package main

import (
	"context"

	"wordswap/internal/dictionary"
	"wordswap/internal/domain"
	"wordswap/internal/service"
	"wordswap/internal/translate"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	svc := service.NewTranslationService(
		translate.New(dictionary.Dictionaries(), domain.ReorderLiteral),
		domain.PairEnglishTamil,
		logger,
	)

	lambda.Start(newHandler(svc))
}

// newHandler returns the Lambda handler. Rejected requests are reported in
// Response.Error rather than as invocation errors.
func newHandler(svc *service.TranslationService) func(context.Context, domain.TranslateRequest) (*domain.TranslateResponse, error) {
	return func(ctx context.Context, req domain.TranslateRequest) (*domain.TranslateResponse, error) {
		translated, err := svc.Translate(req.Sentence, domain.LanguagePair(req.LangPair))
		if err != nil {
			if service.IsRejection(err) {
				return &domain.TranslateResponse{Error: err.Error()}, nil
			}
			return nil, err
		}
		return &domain.TranslateResponse{TranslatedText: translated}, nil
	}
}
