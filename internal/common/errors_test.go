package common

import (
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGRPCErrorHelpers(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
		msg  string
	}{
		{name: "invalid argument", err: InvalidArgumentError("path is required"), code: codes.InvalidArgument, msg: "path is required"},
		{name: "invalid argument formatted", err: InvalidArgumentErrorf("scan: %v", errors.New("boom")), code: codes.InvalidArgument, msg: "scan: boom"},
		{name: "not found", err: NotFoundError("contact not found"), code: codes.NotFound, msg: "contact not found"},
		{name: "internal", err: InternalError("db down"), code: codes.Internal, msg: "db down"},
		{name: "internal formatted", err: InternalErrorf("save contact: %v", errors.New("boom")), code: codes.Internal, msg: "save contact: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, ok := status.FromError(tt.err)
			if !ok {
				t.Fatalf("%v is not a status error", tt.err)
			}
			if st.Code() != tt.code {
				t.Errorf("code = %v, want %v", st.Code(), tt.code)
			}
			if st.Message() != tt.msg {
				t.Errorf("message = %q, want %q", st.Message(), tt.msg)
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	cause := errors.New("timed out")
	wrapped := WrapError(cause, "ocr")
	if wrapped.Error() != "ocr: timed out" {
		t.Errorf("wrapped = %q", wrapped.Error())
	}
	if !errors.Is(wrapped, cause) {
		t.Error("wrapped error does not unwrap to its cause")
	}
	if WrapError(nil, "ocr") != nil {
		t.Error("wrapping nil should stay nil")
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	app := NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	if !errors.Is(app, ErrInvalidInput) {
		t.Error("AppError does not unwrap to its cause")
	}
	want := "CONFIG_ERROR: DB_URL is required: invalid input"
	if app.Error() != want {
		t.Errorf("Error() = %q, want %q", app.Error(), want)
	}
}
