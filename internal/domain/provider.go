package domain

import "fmt"

// Provider identifica a plataforma de anúncios de origem dos dados.
type Provider string

const (
	ProviderMeta     Provider = "meta"
	ProviderGoogle   Provider = "google"
	ProviderTikTok   Provider = "tiktok"
	ProviderLinkedIn Provider = "linkedin"
)

var AllProviders = []Provider{ProviderMeta, ProviderGoogle, ProviderTikTok, ProviderLinkedIn}

func ParseProvider(s string) (Provider, error) {
	switch Provider(s) {
	case ProviderMeta, ProviderGoogle, ProviderTikTok, ProviderLinkedIn:
		return Provider(s), nil
	}
	return "", fmt.Errorf("provider desconhecido: %q", s)
}
