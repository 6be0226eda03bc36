package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"luxadmin/utils"

	"golang.org/x/crypto/bcrypt"

	"luxadmin/rdx"
)

const otpTTL = 10 * time.Minute

// requestResetHandler starts a password reset: a one-time code is stored
// bcrypt-hashed in Redis and the upstream is asked to deliver it.
func requestResetHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email is required")
		return
	}

	otp := utils.GenerateRandomDigitString(6)
	hash, err := bcrypt.GenerateFromPassword([]byte(otp), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create reset code")
		return
	}
	if err := rdx.StoreOTP(input.Email, string(hash), otpTTL); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store reset code")
		return
	}

	if err := API.PostJSON(r.Context(), "/forget-password", "", map[string]string{
		"email": input.Email,
		"otp":   otp,
	}, nil); err != nil {
		log.Printf("reset mail dispatch failed: %v", err)
		utils.RespondWithError(w, http.StatusBadGateway, "Could not send reset code")
		return
	}

	utils.SendResponse(w, http.StatusOK, nil, "Reset code sent", nil)
}

// confirmResetHandler checks the code and forwards the new password
// upstream. The code is single-use.
func confirmResetHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email       string `json:"email"`
		OTP         string `json:"otp"`
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil ||
		input.Email == "" || input.OTP == "" || input.NewPassword == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email, code and new password are required")
		return
	}

	hash, err := rdx.GetOTP(input.Email)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Reset code expired or not requested")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.OTP)) != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid reset code")
		return
	}
	rdx.DeleteOTP(input.Email)

	if err := API.PostJSON(r.Context(), "/reset-password", "", map[string]string{
		"email":       input.Email,
		"newPassword": input.NewPassword,
	}, nil); err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Password reset failed upstream")
		return
	}

	utils.SendResponse(w, http.StatusOK, nil, "Password updated", nil)
}
