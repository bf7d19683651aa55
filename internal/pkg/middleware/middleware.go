package middleware

import (
	"fmt"
	"strings"

	"office-booking-service/config"
	"office-booking-service/internal/pkg/errors"
	"office-booking-service/internal/pkg/helpers"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

type Middleware struct {
	Log            *otelzap.Logger
	HttpClient     *circuit.HTTPClient
	CfgUserService *config.UserServiceConfig
}

type tokenValidateResponse struct {
	IsValid bool   `json:"is_valid"`
	UserID  int64  `json:"user_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}

// ValidateToken resolves the principal from the external user service
// and stores user_id, email_user and role in request locals.
func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	auth := ctx.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("missing bearer token"))
	}
	token := strings.TrimPrefix(auth, "Bearer ")

	url := fmt.Sprintf("http://%s:%s/api/private/token/validate?token=%s",
		m.CfgUserService.Host, m.CfgUserService.Port, token)

	resp, err := m.HttpClient.Get(url)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("invalid token, status %d", resp.StatusCode))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("invalid token"))
	}

	var respData tokenValidateResponse
	if err := json.NewDecoder(resp.Body).Decode(&respData); err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse token response: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	if !respData.IsValid {
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("invalid token"))
	}

	ctx.Locals("user_id", respData.UserID)
	ctx.Locals("email_user", respData.Email)
	ctx.Locals("role", respData.Role)

	return ctx.Next()
}

// RequireRoles gates a route on the principal's role. Every role-gated
// endpoint goes through here rather than branching in handlers.
func (m *Middleware) RequireRoles(roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role, _ := ctx.Locals("role").(string)
		for _, allowed := range roles {
			if role == allowed {
				return ctx.Next()
			}
		}
		return helpers.RespError(ctx, m.Log, errors.ForbiddenError("insufficient role"))
	}
}
