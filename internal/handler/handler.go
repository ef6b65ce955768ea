package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/go-playground/validator/v10"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"career-pivot/internal/engine"
	"career-pivot/internal/model"
)

var validate = newValidator()

type Handler struct {
	engine *engine.Engine
	logger *zap.Logger
}

func New(eng *engine.Engine, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		engine: eng,
		logger: logger,
	}
}

// newValidator reports fields by their JSON names and treats a zero
// model.Date as missing.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		d, ok := field.Interface().(model.Date)
		if !ok || d.IsZero() {
			return nil
		}
		return d.Time
	}, model.Date{})
	return v
}

// Handle is the fasthttp request handler for every route.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	h.logger.Debug("request", zap.ByteString("method", ctx.Method()), zap.String("path", path))

	switch path {
	case "/timeline":
		if h.allow(ctx, fasthttp.MethodPost) {
			h.handleTimeline(ctx)
		}
	case "/compare":
		if h.allow(ctx, fasthttp.MethodPost) {
			h.handleCompare(ctx)
		}
	case "/rules":
		if h.allow(ctx, fasthttp.MethodGet) {
			writeJSON(ctx, fasthttp.StatusOK, h.engine.Rules())
		}
	case "/healthz":
		if h.allow(ctx, fasthttp.MethodGet) {
			writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
		}
	default:
		h.writeError(ctx, fasthttp.StatusNotFound, "Not found: "+path)
	}
}

func (h *Handler) allow(ctx *fasthttp.RequestCtx, method string) bool {
	if string(ctx.Method()) == method {
		return true
	}
	ctx.Response.Header.Set(fasthttp.HeaderAllow, method)
	h.writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
	return false
}

func (h *Handler) handleTimeline(ctx *fasthttp.RequestCtx) {
	in := model.DefaultScenario()
	if err := json.Unmarshal(ctx.PostBody(), &in); err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := Validate(&in); err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, h.engine.Generate(in))
}

func (h *Handler) handleCompare(ctx *fasthttp.RequestCtx) {
	req := model.CompareRequest{Base: model.DefaultScenario()}
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := Validate(&req); err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	resp := h.engine.Process(&req)
	if resp.CalculationMetadata.CalculationOutcome == model.OutcomeFailure {
		h.logger.Warn("comparison failed",
			zap.String("calculation_id", resp.CalculationMetadata.CalculationID),
			zap.Int("messages", len(resp.Messages)))
	}
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

// Validate runs struct validation and joins field errors into one message.
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed on %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s failed on %s", fe.Namespace(), fe.Tag()))
		}
	}
	return errors.New("invalid request: " + strings.Join(parts, "; "))
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		ctx.Error("failed to encode response", fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func (h *Handler) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	h.logger.Warn("request rejected",
		zap.String("path", string(ctx.Path())),
		zap.Int("status", status),
		zap.String("message", message))
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
