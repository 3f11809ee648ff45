package http

import (
	"github.com/gin-gonic/gin"

	"campus-assistant/internal/middleware"
	"campus-assistant/pkg/response"
)

// Login godoc
// @Summary     Sign in with institutional email
// @Description Exchanges email and password for a session token and the user's profile.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} loginResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Failure     403 {object} response.Resp "Account deactivated"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLoginResp(output))
}

// Register godoc
// @Summary     Create a new account
// @Description Registers a student with an institutional email address.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Registration data"
// @Success     201 {object} registerResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Email or username taken"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Register: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newRegisterResp(output))
}

// Logout godoc
// @Summary     Sign out
// @Description Revokes the current session token.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Logout(ctx, sc); err != nil {
		h.l.Warnf(ctx, "uc.Logout: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Session godoc
// @Summary     Get the current session
// @Description Returns the profile backing the current token. Used to restore frontend state.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} sessionResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/session [GET]
func (h *handler) Session(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Session(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "uc.Session: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// GetProfile godoc
// @Summary     Get the current user's profile
// @Tags        Users
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} profileResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/users/profile [GET]
func (h *handler) GetProfile(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.GetProfile(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetProfile: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProfileResp(output.User))
}

// UpdateProfile godoc
// @Summary     Update the current user's profile
// @Description Applies a partial update. Omitted fields are left unchanged.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body updateProfileReq true "Fields to update"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Username taken"
// @Router      /api/v1/users/profile [PUT]
func (h *handler) UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateProfileReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateProfile(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.UpdateProfile: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProfileResp(output.User))
}

// ListAvatars godoc
// @Summary     List the avatar catalog
// @Tags        Users
// @Produce     json
// @Success     200 {object} avatarsResp
// @Router      /api/v1/users/avatars [GET]
func (h *handler) ListAvatars(c *gin.Context) {
	response.OK(c, h.newAvatarsResp())
}
