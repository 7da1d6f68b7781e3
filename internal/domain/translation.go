package domain

// TranslateRequest is the body accepted by the HTTP and Lambda endpoints
type TranslateRequest struct {
	Sentence string `json:"sentence"`
	LangPair string `json:"lang_pair"`
}

// TranslateResponse carries either the translated text or an error message
type TranslateResponse struct {
	TranslatedText string `json:"translated_text,omitempty"`
	Error          string `json:"error,omitempty"`
}
