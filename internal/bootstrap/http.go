package bootstrap

import "net/http"

// InitHTTPClient builds the client for the chat endpoint. No Timeout is set:
// a submission waits for the backend to answer or fail.
func InitHTTPClient() *http.Client {
	return &http.Client{
		Transport: http.DefaultTransport.(*http.Transport).Clone(),
	}
}
