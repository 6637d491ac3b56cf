package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hotel-services/internal/dto"
	"github.com/BruksfildServices01/hotel-services/internal/httperr"
	"github.com/BruksfildServices01/hotel-services/internal/middleware"
	ucAccount "github.com/BruksfildServices01/hotel-services/internal/usecase/account"
)

// ======================================================
// HANDLER
// ======================================================

type AccountHandler struct {
	register *ucAccount.Register
	login    *ucAccount.Login
	signOut  *ucAccount.SignOut
	me       *ucAccount.GetMe
	remove   *ucAccount.DeleteAccount
}

func NewAccountHandler(
	register *ucAccount.Register,
	login *ucAccount.Login,
	signOut *ucAccount.SignOut,
	me *ucAccount.GetMe,
	remove *ucAccount.DeleteAccount,
) *AccountHandler {
	return &AccountHandler{
		register: register,
		login:    login,
		signOut:  signOut,
		me:       me,
		remove:   remove,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RegisterRequest struct {
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	FullName        string `json:"full_name" binding:"required"`
	Role            string `json:"role" binding:"required"`
	ServiceCategory string `json:"service_category"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *AccountHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	acc, err := h.register.Execute(c.Request.Context(), ucAccount.RegisterInput{
		Email:           req.Email,
		Password:        req.Password,
		FullName:        req.FullName,
		Role:            req.Role,
		ServiceCategory: req.ServiceCategory,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, acc)
}

func (h *AccountHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.login.Execute(c.Request.Context(), ucAccount.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SessionDTO{
		Token:     out.Session.Token,
		ExpiresAt: out.Session.ExpiresAt,
		Account:   out.Account,
	})
}

func (h *AccountHandler) Logout(c *gin.Context) {
	if err := h.signOut.Execute(c.Request.Context(), middleware.Session(c)); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AccountHandler) GetMe(c *gin.Context) {
	acc, err := h.me.Execute(c.Request.Context(), middleware.Session(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, acc)
}

func (h *AccountHandler) DeleteMe(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), middleware.Session(c)); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
