package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// GeneratePublicID gera um identificador público com prefixo, usado em
// faturas (inv_...), mensagens (msg_...) e canais (ch_...).
func GeneratePublicID(prefix string) (string, error) {
	id, err := gonanoid.Generate(characters, 12)
	if err != nil {
		return "", err
	}
	return prefix + "_" + id, nil
}
