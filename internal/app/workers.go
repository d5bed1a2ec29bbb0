package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/mentora/mentora_backend/internal/repo"
	entbooking "github.com/mentora/mentora_backend/internal/repo/booking"
	entreview "github.com/mentora/mentora_backend/internal/repo/review"
	entprofile "github.com/mentora/mentora_backend/internal/repo/tutorprofile"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc fx.Lifecycle
	NC *nats.Conn
	DB *repo.Client
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startRatingWorker(p.NC, p.DB)
			startBookingAuditWorker(p.NC, p.DB)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// rating_worker
// ---------------------------------------------------------------------------

// startRatingWorker recomputes a tutor's cached rating and review count
// whenever a review for that tutor is created, updated, or deleted.
func startRatingWorker(nc *nats.Conn, db *repo.Client) {
	_, err := nc.Subscribe("mentora.review.changed.*", func(msg *nats.Msg) {
		profileIDStr := strings.TrimSpace(string(msg.Data))
		profileID, err := uuid.Parse(profileIDStr)
		if err != nil {
			return
		}

		ctx := context.Background()

		reviews, err := db.Review.Query().
			Where(entreview.TutorProfileID(profileID)).
			All(ctx)
		if err != nil {
			slog.Warn("rating_worker: list reviews failed", "tutor_profile_id", profileIDStr, "err", err)
			return
		}

		var avg float64
		if len(reviews) > 0 {
			var sum int
			for _, r := range reviews {
				sum += r.Rating
			}
			avg = float64(sum) / float64(len(reviews))
		}

		if _, err := db.TutorProfile.Update().
			Where(entprofile.ID(profileID)).
			SetRating(avg).
			SetReviewCount(len(reviews)).
			Save(ctx); err != nil {
			slog.Warn("rating_worker: update profile failed", "tutor_profile_id", profileIDStr, "err", err)
			return
		}

		slog.Debug("rating_worker: rating recomputed",
			"tutor_profile_id", profileIDStr,
			"rating", avg,
			"review_count", len(reviews),
		)
	})
	if err != nil {
		slog.Error("rating_worker: subscribe review.changed failed", "err", err)
	}

	slog.Info("rating_worker: started")
}

// ---------------------------------------------------------------------------
// booking_audit_worker
// ---------------------------------------------------------------------------

// startBookingAuditWorker logs booking lifecycle events to the structured log
// stream so operators can trace slot claims and releases.
func startBookingAuditWorker(nc *nats.Conn, db *repo.Client) {
	logEvent := func(event string) func(msg *nats.Msg) {
		return func(msg *nats.Msg) {
			bookingIDStr := strings.TrimSpace(string(msg.Data))
			bookingID, err := uuid.Parse(bookingIDStr)
			if err != nil {
				return
			}

			ctx := context.Background()

			b, err := db.Booking.Query().
				Where(entbooking.ID(bookingID)).
				Only(ctx)
			if err != nil {
				slog.Warn("booking_audit_worker: booking not found", "id", bookingIDStr, "err", err)
				return
			}

			slog.Info("booking lifecycle event",
				"event", event,
				"booking_id", b.ID,
				"student_id", b.StudentID,
				"tutor_profile_id", b.TutorProfileID,
				"slot_id", b.SlotID,
				"status", b.Status,
			)
		}
	}

	if _, err := nc.Subscribe("mentora.booking.created.*", logEvent("booking_created")); err != nil {
		slog.Error("booking_audit_worker: subscribe booking.created failed", "err", err)
	}
	if _, err := nc.Subscribe("mentora.booking.cancelled.*", logEvent("booking_cancelled")); err != nil {
		slog.Error("booking_audit_worker: subscribe booking.cancelled failed", "err", err)
	}
	if _, err := nc.Subscribe("mentora.booking.completed.*", logEvent("booking_completed")); err != nil {
		slog.Error("booking_audit_worker: subscribe booking.completed failed", "err", err)
	}

	slog.Info("booking_audit_worker: started")
}
