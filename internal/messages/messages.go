package messages

import "strings"

// Catalogue holds the fixed strings the form shows the user.
type Catalogue struct {
	EmptyPrompt    string
	GenericFailure string
	Loading        string
}

var English = Catalogue{
	EmptyPrompt:    "Please enter a prompt.",
	GenericFailure: "Sorry, something went wrong while talking to the API.",
	Loading:        "Thinking...",
}

var Portuguese = Catalogue{
	EmptyPrompt:    "Por favor, digite um prompt.",
	GenericFailure: "Desculpe, ocorreu um erro ao se comunicar com a API.",
	Loading:        "Pensando...",
}

// For resolves a locale tag, falling back to English.
func For(locale string) Catalogue {
	tag := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
	switch {
	case tag == "pt" || strings.HasPrefix(tag, "pt-"):
		return Portuguese
	default:
		return English
	}
}
