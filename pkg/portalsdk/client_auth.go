package portalsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
)

// SignupForm is the enrollment form. Field names mirror the signup page; all
// text fields are required by the server.
type SignupForm struct {
	FirstName    string
	LastName     string
	Email        string
	Password     string
	Phone        string
	Address      string
	City         string
	State        string
	ZipCode      string
	PhoneBrand   string
	PhoneModel   string
	PurchaseDate string
	PhoneValue   string
	Plan         string
	TermsAgreed  bool

	Images []SignupImage
}

// SignupImage is one device photo attached to the enrollment form.
type SignupImage struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// Signup enrolls a new customer and returns an authenticated session for the
// fresh account alongside the server's response.
func (c *SDKClient) Signup(ctx context.Context, form SignupForm) (*Session, *SignupResponse, error) {
	body, contentType, err := form.encode()
	if err != nil {
		return nil, nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/signup", body,
		map[string]string{"Content-Type": contentType})
	if err != nil {
		return nil, nil, err
	}

	var signupResp SignupResponse
	if err := decodeResponse(resp, &signupResp); err != nil {
		return nil, nil, err
	}

	session, err := newSession(c, signupResp.Token)
	if err != nil {
		return nil, nil, err
	}
	return session, &signupResp, nil
}

// Login exchanges credentials for an authenticated session.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, *LoginResponse, error) {
	payload, err := json.Marshal(LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", bytes.NewReader(payload),
		map[string]string{"Content-Type": "application/json"})
	if err != nil {
		return nil, nil, err
	}

	var loginResp LoginResponse
	if err := decodeResponse(resp, &loginResp); err != nil {
		return nil, nil, err
	}

	session, err := newSession(c, loginResp.Token)
	if err != nil {
		return nil, nil, err
	}
	return session, &loginResp, nil
}

func (f *SignupForm) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	terms := "false"
	if f.TermsAgreed {
		terms = "true"
	}

	fields := map[string]string{
		"firstName":    f.FirstName,
		"lastName":     f.LastName,
		"email":        f.Email,
		"password":     f.Password,
		"phone":        f.Phone,
		"address":      f.Address,
		"city":         f.City,
		"state":        f.State,
		"zipCode":      f.ZipCode,
		"phoneBrand":   f.PhoneBrand,
		"phoneModel":   f.PhoneModel,
		"purchaseDate": f.PurchaseDate,
		"phoneValue":   f.PhoneValue,
		"plan":         f.Plan,
		"terms":        terms,
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("failed to encode form: %w", err)
		}
	}

	for _, img := range f.Images {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="images"; filename=%q`, img.Filename))
		contentType := img.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := mw.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode form: %w", err)
		}
		if _, err := io.Copy(part, img.Content); err != nil {
			return nil, "", fmt.Errorf("failed to encode form: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to encode form: %w", err)
	}
	return &buf, mw.FormDataContentType(), nil
}
