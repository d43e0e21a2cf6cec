package httpserver

import "net/http"

type corsHandler struct {
	AllowedOrigins string
	Next           http.Handler
}

func (handler corsHandler) ServeHTTP(
	writer http.ResponseWriter,
	request *http.Request,
) {
	if handler.AllowedOrigins != "" {
		writer.Header().Set("Access-Control-Allow-Origin", handler.AllowedOrigins)
	}

	handler.Next.ServeHTTP(writer, request)
}
