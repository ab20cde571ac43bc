package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

type captureHandler struct {
	errs   []*Error
	panics []*PanicError
}

func (h *captureHandler) HandleError(err *Error)    { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(p *PanicError) { h.panics = append(h.panics, p) }

func installCapture(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{}
	SetHandler(h)
	t.Cleanup(func() { SetHandler(nil) })
	return h
}

func TestE_WrapsAndUnwraps(t *testing.T) {
	cause := stderrors.New("file unreadable")
	err := E("theme.LoadOptional", KindConfig, cause)

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should unwrap to its cause")
	}
	msg := err.Error()
	if !strings.Contains(msg, "theme.LoadOptional") || !strings.Contains(msg, "config") {
		t.Errorf("message %q should carry op and kind", msg)
	}
	if err.Timestamp.IsZero() {
		t.Error("E should stamp the error")
	}
}

func TestReport_DeliversToHandler(t *testing.T) {
	h := installCapture(t)

	Report(E("render.Frame", KindRender, stderrors.New("lost surface")))
	Report(nil)

	if len(h.errs) != 1 {
		t.Fatalf("handler received %d errors, want 1", len(h.errs))
	}
	if h.errs[0].Kind != KindRender {
		t.Errorf("kind = %v, want render", h.errs[0].Kind)
	}
}

func TestRecover_ReportsPanic(t *testing.T) {
	h := installCapture(t)

	func() {
		defer Recover("demo.Update")
		panic("boom")
	}()

	if len(h.panics) != 1 {
		t.Fatalf("handler received %d panics, want 1", len(h.panics))
	}
	p := h.panics[0]
	if p.Op != "demo.Update" || p.Value != "boom" {
		t.Errorf("panic = %+v", p)
	}
	if p.StackTrace == "" {
		t.Error("recovered panic should carry a stack trace")
	}
	if !strings.Contains(p.Error(), "demo.Update") {
		t.Errorf("message %q should carry the op", p.Error())
	}
}

func TestRecover_NoPanicIsQuiet(t *testing.T) {
	h := installCapture(t)

	func() {
		defer Recover("demo.Update")
	}()

	if len(h.panics) != 0 {
		t.Error("Recover without a panic should report nothing")
	}
}

func TestErrorKind_String(t *testing.T) {
	cases := map[ErrorKind]string{
		KindUnknown: "unknown",
		KindConfig:  "config",
		KindRender:  "render",
		KindPanic:   "panic",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(kind), got, want)
		}
	}
}
