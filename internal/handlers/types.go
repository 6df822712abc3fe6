package handlers

// RegisterRequest is the request body for user registration. The shared
// credential fields are composed in, not inherited.
type RegisterRequest struct {
	Body struct {
		Credentials
		ConfirmPassword string `doc:"Must match password" example:"pass321" json:"confirm_password"`
	}
}

// Credentials are the fields shared by registration and login payloads.
type Credentials struct {
	Email    string `doc:"Account email"    example:"user@example.com" format:"email" json:"email"`
	Password string `doc:"Account password" example:"pass321"          json:"password" minLength:"3"`
}

// RegisterResponse confirms a successful registration.
type RegisterResponse struct {
	Body struct {
		Detail string `json:"detail"`
	}
}

// LoginRequest is the request body for user login.
type LoginRequest struct {
	Body struct {
		Credentials
	}
}

// LoginResponse carries the signed token for a successful login.
type LoginResponse struct {
	Body struct {
		Token string `doc:"Signed JWT" json:"token"`
	}
}

// ShortenRequest is the request body for creating a short link.
type ShortenRequest struct {
	Body struct {
		OriginalURL string `doc:"The URL to shorten" example:"https://example.com/very/long/path" format:"uri" json:"original_url"`
	}
}

// ShortenResponse is the public view of a short link. QRCode carries the
// URL of the QR endpoint for the link.
type ShortenResponse struct {
	Body struct {
		ShortURL string `doc:"The full short URL"          example:"http://localhost:8000/shorten/abc123"    json:"short_url"`
		QRCode   string `doc:"URL serving the QR image"    example:"http://localhost:8000/shorten/qr/abc123" json:"qr_code"`
		HitCount int64  `doc:"Number of redirects served"  example:"0"                                       json:"hit_count"`
		ShortID  string `doc:"The short identifier"        example:"abc123"                                  json:"short_id"`
	}
}

// RedirectRequest is the request for resolving a short link.
type RedirectRequest struct {
	ShortID string `doc:"The short identifier" example:"abc123" path:"short_id"`
}

// RedirectResponse redirects the client to the original URL.
type RedirectResponse struct {
	Status  int
	Headers struct {
		Location string `doc:"The original URL" header:"Location"`
	}
}

// QRCodeRequest is the request for fetching a QR image.
type QRCodeRequest struct {
	ShortID string `doc:"The short identifier" example:"abc123" path:"short_id"`
}

// QRCodeResponse streams the PNG bytes of the QR image.
type QRCodeResponse struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// HealthResponse is the response of the health check endpoint.
type HealthResponse struct {
	Body struct {
		Message string `json:"message"`
		Version string `json:"version"`
	}
}
