package app

import (
	"fmt"
	"ltapp/internal/app/deps"
	"ltapp/internal/app/services"
	skipwaiting "ltapp/internal/http/handlers/cache/skip_waiting"
	listcomplaints "ltapp/internal/http/handlers/complaints/list_complaints"
	logcomplaint "ltapp/internal/http/handlers/complaints/log_complaint"
	resolvecomplaint "ltapp/internal/http/handlers/complaints/resolve_complaint"
	handlerevents "ltapp/internal/http/handlers/events"
	listnotifications "ltapp/internal/http/handlers/notifications/list_notifications"
	cancelallreminders "ltapp/internal/http/handlers/reminders/cancel_all_reminders"
	cancelreminder "ltapp/internal/http/handlers/reminders/cancel_reminder"
	listreminders "ltapp/internal/http/handlers/reminders/list_reminders"
	schedulereminder "ltapp/internal/http/handlers/reminders/schedule_reminder"
	getrent "ltapp/internal/http/handlers/rent/get_rent"
	markrentpaid "ltapp/internal/http/handlers/rent/mark_rent_paid"
	setrent "ltapp/internal/http/handlers/rent/set_rent"
	"ltapp/internal/http/handlers/static"
	assetcacheimpl "ltapp/internal/implementations/asset_cache"
	assetfetcher "ltapp/internal/implementations/asset_fetcher"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	remindersRouter := chi.NewRouter()
	remindersRouter.Method(http.MethodGet, "/", listreminders.New(s.ListReminders))
	remindersRouter.Method(http.MethodPost, "/", schedulereminder.New(s.ScheduleReminder))
	remindersRouter.Method(http.MethodDelete, "/", cancelallreminders.New(s.CancelAllReminders))
	remindersRouter.Method(http.MethodDelete, "/{entityID}", cancelreminder.New(s.CancelReminder))

	complaintsRouter := chi.NewRouter()
	complaintsRouter.Method(http.MethodGet, "/", listcomplaints.New(s.ListComplaints))
	complaintsRouter.Method(http.MethodPost, "/", logcomplaint.New(s.LogComplaint))
	complaintsRouter.Method(http.MethodPost, "/{complaintID}/resolve", resolvecomplaint.New(s.ResolveComplaint))

	rentRouter := chi.NewRouter()
	rentRouter.Method(http.MethodPost, "/", setrent.New(s.SetRent))
	rentRouter.Method(http.MethodGet, "/{tenantName}", getrent.New(s.GetRent))
	rentRouter.Method(http.MethodPost, "/{chargeID}/pay", markrentpaid.New(s.MarkRentPaid))

	router.Mount("/reminders", remindersRouter)
	router.Mount("/complaints", complaintsRouter)
	router.Mount("/rent", rentRouter)

	router.Method(
		http.MethodGet,
		"/notifications",
		listnotifications.New(deps.NotificationCenter),
	)
	router.Method(http.MethodPost, "/cache/skip_waiting", skipwaiting.New(deps.CommandSender))
	router.Method(
		http.MethodGet,
		"/events",
		handlerevents.New(deps.Logger, deps.SseServer, deps.Config.EventStream),
	)

	fetcher := assetfetcher.NewHTTP(
		&http.Client{Timeout: deps.Config.StaticFetchTimeout},
		deps.Config.StaticOriginURL,
		deps.Config.StaticManifestPath,
	)
	cacheRepository := assetcacheimpl.NewRedis(deps.Redis, deps.Logger)
	router.Method(
		http.MethodGet,
		"/*",
		static.New(deps.Logger, cacheRepository, fetcher, deps.Config.StaticShellPath),
	)

	return &http.Server{
		Handler:           router,
		Addr:              fmt.Sprintf("0.0.0.0:%d", deps.Config.Port),
		ReadHeaderTimeout: 5 * time.Second,
	}
}
