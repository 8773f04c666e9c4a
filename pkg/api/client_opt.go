package api

import (
	"net/http"
)

type apiKeyOpt struct {
	header string
	key    string
}

// APIKey sets the key header on the request when key is not empty.
func APIKey(header, key string) *apiKeyOpt {
	return &apiKeyOpt{header: header, key: key}
}

func (opt *apiKeyOpt) Do(client defaultClient, req *http.Request) {
	if opt.key != "" {
		req.Header.Set(opt.header, opt.key)
	}
}
