package handlers

// RegisterRequest is the request for registering a short link.
//
// The body is read raw so that both urlencoded forms and JSON are accepted.
type RegisterRequest struct {
	ContentType string `header:"Content-Type"`
	RawBody     []byte `contentType:"application/x-www-form-urlencoded" doc:"Form with a single url field"`
}

// RegisterBody carries either the new link or an error message.
type RegisterBody struct {
	OriginalURL string `doc:"The URL as submitted"         example:"https://example.com/a/b?c=1" json:"original_url,omitempty"`
	ShortURL    string `doc:"The short code for the link"  example:"aB3_x"                       json:"short_url,omitempty"`
	Error       string `doc:"Set when the URL is rejected" example:"invalid URL"                 json:"error,omitempty"`
}

// RegisterResponse is the response for a register request.
type RegisterResponse struct {
	Status   int
	Location string `doc:"Path of the new short link" header:"Location"`
	Body     RegisterBody
}

// RedirectRequest is the request for following a short link.
type RedirectRequest struct {
	Code string `doc:"The short code" example:"aB3_x" maxLength:"64" path:"code"`
}

// RedirectResponse redirects the client to the original URL.
type RedirectResponse struct {
	Status   int
	Location string `doc:"The original URL" header:"Location"`
}
