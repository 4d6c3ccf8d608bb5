package handlers

import (
	"errors"
	"net/http"

	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/usecase"
	"mbg_outreach/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Payload tidak valid", http.StatusBadRequest)
	errNothingToApply = pkg.NewDomainErrorSimple("NOTHING_TO_UPDATE", "Tidak ada data yang diupdate", http.StatusBadRequest)
	errInvalidStatus  = pkg.NewDomainErrorSimple("INVALID_STATUS", "Status tidak dikenal", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapLeadError covers every use case error a lead or automation route can surface.
// fallback is the Indonesian message shown for unexpected failures.
func mapLeadError(err error, fallback string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadID):
		return pkg.NewDomainErrorSimple("INVALID_LEAD_ID", "ID dapur tidak valid", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Data tidak ditemukan", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatus), errors.Is(err, entities.ErrUnknownLeadStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Perubahan status tidak diizinkan", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMessageTooLong):
		return pkg.NewDomainErrorSimple("MESSAGE_TOO_LONG", "Pesan melebihi 700 karakter", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNonCompliant):
		return pkg.NewDomainError("MESSAGE_NON_COMPLIANT", "Pesan harus menyebutkan roti dan sertifikasi Halal", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPhoneMissing):
		return pkg.NewDomainErrorSimple("PHONE_MISSING", "Nomor telepon tidak tersedia", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMessageMissing):
		return pkg.NewDomainErrorSimple("MESSAGE_MISSING", "Pesan penawaran belum dibuat", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSendBlocked):
		return pkg.NewDomainError("SEND_BLOCKED", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRecentlySent):
		return pkg.NewDomainErrorSimple("RECENTLY_CONTACTED", "Baru saja dihubungi", http.StatusConflict)
	case errors.Is(err, usecase.ErrLeadClosed):
		return pkg.NewDomainErrorSimple("LEAD_CLOSED", "Dapur sudah memberikan jawaban", http.StatusConflict)
	case errors.Is(err, usecase.ErrLeadInvalid):
		return pkg.NewDomainError("LEAD_INVALID", "Data dapur tidak lengkap", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRunInProgress):
		return pkg.NewDomainErrorSimple("RUN_IN_PROGRESS", "Proses otomasi sedang berjalan", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", fallback, err, http.StatusInternalServerError)
	}
}
