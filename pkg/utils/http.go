package utils

import (
	"fmt"
	"io"
	"net/http"
)

func MakeRequest(url string) ([]byte, error) {
	return MakeRequestWithHeaders(url, nil)
}

// MakeRequestWithHeaders faz um GET com headers adicionais, usado pelos
// clients de providers que autenticam via header em vez de query string.
func MakeRequestWithHeaders(url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Error on Request: %s status: %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return data, nil
}
