package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

// ctxUserID extracts the authenticated user's id injected by the Auth
// middleware. Its presence proves the middleware ran.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

// ctxIdentity collects the identity-provider claims used to provision the
// user row on login.
func ctxIdentity(c echo.Context) (ports.UpsertUserInput, error) {
	id, err := ctxUserID(c)
	if err != nil {
		return ports.UpsertUserInput{}, err
	}
	email, _ := c.Get("email").(string)
	first, _ := c.Get("first_name").(string)
	last, _ := c.Get("last_name").(string)
	img, _ := c.Get("profile_image_url").(string)

	return ports.UpsertUserInput{
		ID:              id,
		Email:           email,
		FirstName:       first,
		LastName:        last,
		ProfileImageURL: img,
	}, nil
}
