package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructorsCarryKindAndStatus(t *testing.T) {
	cases := []struct {
		name string
		err  *ApiError
		kind Kind
		code int
	}{
		{"unsupported format", ErrUnsupportedFormat("bad ext"), KindInput, http.StatusBadRequest},
		{"file too large", ErrFileTooLarge("11MB"), KindInput, http.StatusBadRequest},
		{"missing file", ErrMissingFile("jd_file"), KindInput, http.StatusBadRequest},
		{"corrupt document", ErrCorruptDocument("bad pdf"), KindExtraction, http.StatusUnprocessableEntity},
		{"empty document", ErrEmptyDocument("no text"), KindExtraction, http.StatusUnprocessableEntity},
		{"timeout", ErrTimeout("60s elapsed"), KindTimeout, http.StatusGatewayTimeout},
		{"internal", ErrInternal("boom"), KindInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Kind != tc.kind {
				t.Fatalf("kind = %v, want %v", tc.err.Kind, tc.kind)
			}
			if tc.err.StatusCode() != tc.code {
				t.Fatalf("status = %d, want %d", tc.err.StatusCode(), tc.code)
			}
		})
	}
}

func TestErrorStringIncludesDetail(t *testing.T) {
	err := ErrCorruptDocument("failed to extract text from cv.pdf")
	want := "Corrupt document: failed to extract text from cv.pdf"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}

	bare := New(KindInternal, http.StatusInternalServerError, "Internal server error", "")
	if bare.Error() != "Internal server error" {
		t.Fatalf("Error() = %q", bare.Error())
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("unexpected EOF")
	err := ErrCorruptDocument("bad pdf").Wrap(cause)

	if !stderrors.Is(err, cause) {
		t.Fatalf("wrapped cause lost")
	}
}

func TestAsApiErrorUnwrapsThroughChain(t *testing.T) {
	inner := ErrEmptyDocument("no text")
	wrapped := fmt.Errorf("ingest jd: %w", inner)

	got := AsApiError(wrapped)
	if got != inner {
		t.Fatalf("AsApiError did not recover the original error")
	}
}

func TestAsApiErrorMapsUnknownToInternal(t *testing.T) {
	cause := stderrors.New("nil pointer somewhere")
	got := AsApiError(cause)

	if got.Kind != KindInternal {
		t.Fatalf("kind = %v, want internal", got.Kind)
	}
	if got.StatusCode() != http.StatusInternalServerError {
		t.Fatalf("status = %d", got.StatusCode())
	}
	// The original cause stays on the chain for logging, not for clients.
	if !stderrors.Is(got, cause) {
		t.Fatalf("cause not retained on chain")
	}
	if got.Detail != "unexpected failure during matching" {
		t.Fatalf("detail leaked internals: %q", got.Detail)
	}
}
