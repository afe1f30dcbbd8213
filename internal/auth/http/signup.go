package http

import (
	"mime/multipart"
	"net/http"

	"github.com/covercell/covercell/internal/auth/service"
	"github.com/covercell/covercell/pkg/httpx"
	"github.com/covercell/covercell/pkg/portalsdk"
)

// maxBodyBytes bounds the multipart form held in memory while parsing. Four
// device photos plus text fields fit comfortably.
const maxBodyBytes = 32 << 20

type SignupHandler struct {
	RegisterService *service.RegisterService
}

// ServeHTTP handles customer enrollment.
//
//	@Summary		Enroll a new customer
//	@Description	Creates a customer account from the signup form. The request is multipart/form-data
//	@Description	carrying the intake fields plus up to four device photos under the "images" field.
//	@Description	On success the response carries the stored user and a session token.
//	@Tags			Auth
//	@Accept			mpfd
//	@Produce		json
//	@Success		201	{object}	portalsdk.SignupResponse	"msg, user, token"
//	@Failure		400	{object}	portalsdk.APIError			"Missing fields, terms not accepted, or duplicate email"
//	@Failure		500	{object}	portalsdk.APIError			"Internal server error"
//	@Router			/api/auth/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
		httpx.WriteMsg(w, http.StatusBadRequest, "Request body is missing")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	reg := service.Registration{
		FirstName:    r.FormValue("firstName"),
		LastName:     r.FormValue("lastName"),
		Email:        r.FormValue("email"),
		Password:     r.FormValue("password"),
		Phone:        r.FormValue("phone"),
		Address:      r.FormValue("address"),
		City:         r.FormValue("city"),
		State:        r.FormValue("state"),
		ZipCode:      r.FormValue("zipCode"),
		PhoneBrand:   r.FormValue("phoneBrand"),
		PhoneModel:   r.FormValue("phoneModel"),
		PurchaseDate: r.FormValue("purchaseDate"),
		PhoneValue:   r.FormValue("phoneValue"),
		Plan:         r.FormValue("plan"),
		Terms:        r.FormValue("terms"),
	}

	files := r.MultipartForm.File["images"]
	opened := make([]multipart.File, 0, len(files))
	defer func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}()
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		opened = append(opened, f)
		reg.Images = append(reg.Images, service.ImageUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Content:     f,
		})
	}

	user, token, err := h.RegisterService.Register(ctx, reg)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, portalsdk.SignupResponse{
		Msg:   "User registered",
		User:  userPayload(user),
		Token: token,
	})
}
