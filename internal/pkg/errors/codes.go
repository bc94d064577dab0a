package errors

import "net/http"

var (
	ErrProjectNotFound = New(
		"PROJECT_NOT_FOUND",
		"Project not found",
		http.StatusNotFound,
	)

	ErrAreaNotFound = New(
		"AREA_NOT_FOUND",
		"Area not found",
		http.StatusNotFound,
	)

	ErrCameraNotFound = New(
		"CAMERA_NOT_FOUND",
		"Camera not found",
		http.StatusNotFound,
	)

	ErrCameraConfigNotFound = New(
		"CAMERA_CONFIG_NOT_FOUND",
		"Camera configuration not found",
		http.StatusNotFound,
	)

	ErrBlobNotFound = New(
		"BLOB_NOT_FOUND",
		"Blob not found",
		http.StatusNotFound,
	)

	ErrPartialPredictionData = New(
		"PARTIAL_PREDICTION_DATA",
		"Partial prediction data found",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidContainer = New(
		"INVALID_CONTAINER",
		"Invalid blob container name",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrProjectExists = New(
		"PROJECT_EXISTS",
		"Project with this ID already exists",
		http.StatusConflict,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"API key is missing or wrong",
		http.StatusForbidden,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
