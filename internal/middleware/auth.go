package middleware

import (
	"net/http"
	"strings"

	"github.com/stpnv0/SocietyBooker/internal/domain"
	"github.com/stpnv0/SocietyBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const (
	identityKey = "identity"
	// ErrorKey carries a handler error message to the request log.
	ErrorKey = "error"
)

type TokenParser interface {
	ParseToken(token string) (domain.Identity, error)
}

// Auth requires a bearer session token and stores the caller's identity.
// Building scope is taken from the token only.
func Auth(parser TokenParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.Fail(domain.Code(domain.ErrUnauthorized), "missing bearer token"),
			)
			return
		}

		id, err := parser.ParseToken(token)
		if err != nil {
			c.Set(ErrorKey, err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.Fail(domain.Code(domain.ErrUnauthorized), "invalid session token"),
			)
			return
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

func RequireAdmin() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id, ok := IdentityFrom(c)
		if !ok || !id.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.Fail(domain.Code(domain.ErrForbidden), "admin role required"),
			)
			return
		}
		c.Next()
	}
}

func IdentityFrom(c *ginext.Context) (domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}
	id, ok := v.(domain.Identity)
	return id, ok
}
