package render

import (
	"encoding/json"
	"errors"
	"net/http"

	"beanstalk/core"
	"beanstalk/handler/codes"

	"github.com/sirupsen/logrus"
	"github.com/twitchtv/twirp"
)

type H map[string]interface{}

// JSON render with json
func JSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		logrus.WithError(err).Errorln("render json")
	}
}

// HTML render html
func HTML(w http.ResponseWriter, b []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(b); err != nil {
		logrus.WithError(err).Errorln("render html")
	}
}

// Error write error
func Error(w http.ResponseWriter, statusCode, errCode int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := errorResponse{Code: errCode, Msg: err.Error()}
	if statusCode >= http.StatusInternalServerError {
		resp.Msg = http.StatusText(statusCode)
		if ResponseErrorMessageAsHint {
			resp.Hint = err.Error()
		}
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(resp); err != nil {
		logrus.WithError(err).Errorln("render error")
	}
}

// Err write err with the status derived from its type
func Err(w http.ResponseWriter, err error) {
	var code core.ErrorCode
	if errors.As(err, &code) {
		Error(w, statusOf(code), int(code), err)
		return
	}

	var twerr twirp.Error
	if errors.As(err, &twerr) {
		Error(w, twirp.ServerHTTPStatusFromErrorCode(twerr.Code()), codes.Get(twerr.Code()), errors.New(twerr.Msg()))
		return
	}

	Error(w, http.StatusInternalServerError, int(core.ErrUnknown), err)
}

func statusOf(code core.ErrorCode) int {
	switch code {
	case core.ErrProposalNotFound:
		return http.StatusNotFound
	case core.ErrInvalidArgument, core.ErrSpaceNotAllowed:
		return http.StatusBadRequest
	case core.ErrQuorumUnavailable, core.ErrSnapshotHub:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
