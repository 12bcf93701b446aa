package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"

	"github.com/propertyops/property-alerts/internal/pkg/application/alerts"
	"github.com/propertyops/property-alerts/internal/pkg/infrastructure/storage"
	"github.com/propertyops/property-alerts/internal/pkg/presentation/api/auth"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

var tracer = otel.Tracer("property-alerts/api")

func RegisterHandlers(ctx context.Context, router *chi.Mux, policies io.Reader, svc alerts.AlertService) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	authenticator, err := auth.NewAuthenticator(ctx, policies)
	if err != nil {
		return nil, fmt.Errorf("failed to create api authenticator: %w", err)
	}

	router.Route("/api/v0", func(r chi.Router) {
		r.Route("/alerts", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(authenticator.RequireAccess(auth.ScopeRead))

				r.Get("/", queryAlertsHandler(log, svc))
				r.Get("/{alertID}", getAlertDetails(log, svc))
			})

			r.Group(func(r chi.Router) {
				r.Use(authenticator.RequireAccess(auth.ScopeWrite))

				r.Patch("/{alertID}", patchAlertHandler(log, svc))
				r.Post("/dismiss-all", dismissAllHandler(log, svc))
				r.Post("/read-all", markAllReadHandler(log, svc))
				r.Post("/generate", generateAlertsHandler(log, svc))
				r.Post("/cleanup", cleanupAlertsHandler(log, svc))
			})
		})
	})

	return router, nil
}

func queryAlertsHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		vc := auth.GetVisibilityFromContext(ctx, auth.ScopeRead)

		conditions := storage.ParseConditions(ctx, r.URL.Query())

		collection, err := svc.Query(ctx, vc, conditions...)
		if err != nil {
			requestLogger.Error("unable to fetch alerts", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		response := newAlertsResponse(r.URL.Path, r.URL.Query(), collection)

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(response.Byte())
	}
}

func getAlertDetails(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID := chi.URLParam(r, "alertID")
		if alertID != "" {
			requestLogger = requestLogger.With(slog.String("alert_id", alertID))
		}

		vc := auth.GetVisibilityFromContext(ctx, auth.ScopeRead)

		alert, err := svc.GetByID(ctx, alertID, vc)
		if errors.Is(err, alerts.ErrAlertNotFound) {
			requestLogger.Debug("alert not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not fetch alert", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, err := json.Marshal(ApiResponse{Data: alert})
		if err != nil {
			requestLogger.Error("unable to marshal alert to json", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func patchAlertHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "patch-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID := chi.URLParam(r, "alertID")
		if alertID != "" {
			requestLogger = requestLogger.With(slog.String("alert_id", alertID))
		}

		b, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var patch struct {
			Dismissed *bool `json:"dismissed,omitempty"`
			Read      *bool `json:"read,omitempty"`
		}
		err = json.Unmarshal(b, &patch)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if patch.Dismissed == nil && patch.Read == nil {
			requestLogger.Error("no patchable fields in body")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		vc := auth.GetVisibilityFromContext(ctx, auth.ScopeWrite)

		if patch.Dismissed != nil && *patch.Dismissed {
			err = svc.Dismiss(ctx, alertID, vc)
		}
		if err == nil && patch.Read != nil && *patch.Read {
			err = svc.MarkRead(ctx, alertID, vc)
		}

		if errors.Is(err, alerts.ErrAlertNotFound) {
			requestLogger.Debug("alert not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("unable to update alert", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func dismissAllHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "dismiss-all-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		vc := auth.GetVisibilityFromContext(ctx, auth.ScopeWrite)

		n, err := svc.DismissAll(ctx, vc)
		if err != nil {
			requestLogger.Error("unable to dismiss alerts", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, _ := json.Marshal(ApiResponse{Data: map[string]int{"dismissed": n}})

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func markAllReadHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "mark-all-alerts-read")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		vc := auth.GetVisibilityFromContext(ctx, auth.ScopeWrite)

		n, err := svc.MarkAllRead(ctx, vc)
		if err != nil {
			requestLogger.Error("unable to mark alerts read", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, _ := json.Marshal(ApiResponse{Data: map[string]int{"read": n}})

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func generateAlertsHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "generate-alerts")
		defer span.End()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		vc := auth.GetVisibilityFromContext(ctx, auth.ScopeWrite)

		result := svc.GenerateAlerts(ctx, vc)

		if len(result.Errors) > 0 {
			requestLogger.Warn("generation pass finished with errors", "count", len(result.Errors))
		}

		b, _ := json.Marshal(ApiResponse{Data: result})

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func cleanupAlertsHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "cleanup-alerts")
		defer span.End()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		result := svc.CleanupAlerts(ctx)

		if len(result.Errors) > 0 {
			requestLogger.Warn("cleanup pass finished with errors", "count", len(result.Errors))
		}

		b, _ := json.Marshal(ApiResponse{Data: result})

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}
