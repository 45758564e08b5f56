package http

import (
	"net/http"

	"maternal-care-backend/internal/delivery/http/handler"
	"maternal-care-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

const (
	uuidPattern = "{id:[0-9a-fA-F-]{36}}"
	intPattern  = "{id:[0-9]+}"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	mohHandler         *handler.MOHHandler
	midwifeHandler     *handler.MidwifeHandler
	motherHandler      *handler.MotherHandler
	carePlanHandler    *handler.CarePlanHandler
	riskHandler        *handler.RiskHandler
	appointmentHandler *handler.AppointmentHandler
	visitHandler       *handler.VisitHandler
	careRecordHandler  *handler.CareRecordHandler
	leaveHandler       *handler.LeaveHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	mohHandler *handler.MOHHandler,
	midwifeHandler *handler.MidwifeHandler,
	motherHandler *handler.MotherHandler,
	carePlanHandler *handler.CarePlanHandler,
	riskHandler *handler.RiskHandler,
	appointmentHandler *handler.AppointmentHandler,
	visitHandler *handler.VisitHandler,
	careRecordHandler *handler.CareRecordHandler,
	leaveHandler *handler.LeaveHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		mohHandler:         mohHandler,
		midwifeHandler:     midwifeHandler,
		motherHandler:      motherHandler,
		carePlanHandler:    carePlanHandler,
		riskHandler:        riskHandler,
		appointmentHandler: appointmentHandler,
		visitHandler:       visitHandler,
		careRecordHandler:  careRecordHandler,
		leaveHandler:       leaveHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/midwife/login", r.authHandler.LoginMidwife).Methods(http.MethodPost)
	auth.HandleFunc("/mother/login", r.authHandler.LoginMother).Methods(http.MethodPost)
	auth.HandleFunc("/moh/login", r.authHandler.LoginMOH).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/password", r.authHandler.ChangePassword).Methods(http.MethodPut)

	// MOH routes
	moh := api.PathPrefix("/moh").Subrouter()
	moh.Use(r.authMiddleware.Authenticate)
	moh.Use(middleware.RequireMOH)
	moh.HandleFunc("/me", r.mohHandler.GetMe).Methods(http.MethodGet)
	moh.HandleFunc("/midwives", r.midwifeHandler.RegisterMidwife).Methods(http.MethodPost)
	moh.HandleFunc("/midwives", r.midwifeHandler.GetAllMidwives).Methods(http.MethodGet)
	moh.HandleFunc("/midwives/"+uuidPattern+"/status", r.midwifeHandler.UpdateMidwifeStatus).Methods(http.MethodPatch)
	moh.HandleFunc("/leave-requests", r.leaveHandler.GetAllLeaveRequests).Methods(http.MethodGet)
	moh.HandleFunc("/leave-requests/"+intPattern, r.leaveHandler.ReviewLeaveRequest).Methods(http.MethodPatch)
	moh.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	moh.HandleFunc("/audit-logs/"+intPattern, r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Midwife routes
	midwife := api.PathPrefix("/midwife").Subrouter()
	midwife.Use(r.authMiddleware.Authenticate)
	midwife.Use(middleware.RequireMidwife)
	midwife.HandleFunc("/me", r.midwifeHandler.GetMe).Methods(http.MethodGet)
	midwife.HandleFunc("/dashboard", r.midwifeHandler.GetDashboardStats).Methods(http.MethodGet)
	midwife.HandleFunc("/leave-requests", r.leaveHandler.CreateLeaveRequest).Methods(http.MethodPost)
	midwife.HandleFunc("/leave-requests", r.leaveHandler.GetMyLeaveRequests).Methods(http.MethodGet)

	// Caseload routes (midwife)
	mothers := api.PathPrefix("/mothers").Subrouter()
	mothers.Use(r.authMiddleware.Authenticate)
	mothers.Use(middleware.RequireMidwife)
	mothers.HandleFunc("", r.motherHandler.CreateMother).Methods(http.MethodPost)
	mothers.HandleFunc("", r.motherHandler.GetMyMothers).Methods(http.MethodGet)
	mothers.HandleFunc("/risks/stats", r.riskHandler.GetRiskStats).Methods(http.MethodGet)
	mothers.HandleFunc("/risks/{type}", r.riskHandler.GetMothersByRisk).Methods(http.MethodGet)
	mothers.HandleFunc("/"+uuidPattern, r.motherHandler.GetMother).Methods(http.MethodGet)
	mothers.HandleFunc("/"+uuidPattern, r.motherHandler.UpdateMother).Methods(http.MethodPatch)
	mothers.HandleFunc("/"+uuidPattern+"/pregnancy", r.carePlanHandler.StartPregnancy).Methods(http.MethodPost)
	mothers.HandleFunc("/"+uuidPattern+"/pregnancy", r.carePlanHandler.UpdatePregnancyRecord).Methods(http.MethodPut)
	mothers.HandleFunc("/"+uuidPattern+"/pregnancy", r.carePlanHandler.GetPregnancy).Methods(http.MethodGet)
	mothers.HandleFunc("/"+uuidPattern+"/pregnancy-records", r.carePlanHandler.ListPregnancyRecords).Methods(http.MethodGet)
	mothers.HandleFunc("/"+uuidPattern+"/delivery", r.carePlanHandler.ReportDelivery).Methods(http.MethodPost)
	mothers.HandleFunc("/"+uuidPattern+"/appointments", r.appointmentHandler.GetMotherAppointments).Methods(http.MethodGet)
	mothers.HandleFunc("/"+uuidPattern+"/anc-visits", r.visitHandler.GetMotherANCVisits).Methods(http.MethodGet)
	mothers.HandleFunc("/"+uuidPattern+"/pnc-visits", r.visitHandler.GetMotherPNCVisits).Methods(http.MethodGet)
	mothers.HandleFunc("/"+uuidPattern+"/delivery-records", r.careRecordHandler.CreateDeliveryRecord).Methods(http.MethodPost)
	mothers.HandleFunc("/"+uuidPattern+"/delivery-records", r.careRecordHandler.GetMotherDeliveryRecords).Methods(http.MethodGet)
	mothers.HandleFunc("/"+uuidPattern+"/antenatal-plans", r.careRecordHandler.CreateAntenatalPlan).Methods(http.MethodPost)
	mothers.HandleFunc("/"+uuidPattern+"/antenatal-plans", r.careRecordHandler.GetMotherAntenatalPlans).Methods(http.MethodGet)

	// Appointment routes (midwife)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.Use(middleware.RequireMidwife)
	appointments.HandleFunc("", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	appointments.HandleFunc("", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	appointments.HandleFunc("/"+intPattern, r.appointmentHandler.UpdateAppointment).Methods(http.MethodPatch)
	appointments.HandleFunc("/"+intPattern, r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)
	appointments.HandleFunc("/"+intPattern+"/anc-visit", r.visitHandler.GetANCVisit).Methods(http.MethodGet)
	appointments.HandleFunc("/"+intPattern+"/pnc-visit", r.visitHandler.GetPNCVisit).Methods(http.MethodGet)

	// Visit records (midwife)
	visits := api.NewRoute().Subrouter()
	visits.Use(r.authMiddleware.Authenticate)
	visits.Use(middleware.RequireMidwife)
	visits.HandleFunc("/anc-visits", r.visitHandler.RecordANCVisit).Methods(http.MethodPost)
	visits.HandleFunc("/pnc-visits", r.visitHandler.RecordPNCVisit).Methods(http.MethodPost)

	// Mother self-service routes
	me := api.PathPrefix("/me").Subrouter()
	me.Use(r.authMiddleware.Authenticate)
	me.Use(middleware.RequireMother)
	me.HandleFunc("", r.motherHandler.GetMe).Methods(http.MethodGet)
	me.HandleFunc("/pregnancy", r.carePlanHandler.GetMyPregnancy).Methods(http.MethodGet)
	me.HandleFunc("/pregnancy-records", r.carePlanHandler.ListMyPregnancyRecords).Methods(http.MethodGet)
	me.HandleFunc("/delivery-records", r.careRecordHandler.GetMyDeliveryRecords).Methods(http.MethodGet)
	me.HandleFunc("/antenatal-plans", r.careRecordHandler.GetMyAntenatalPlans).Methods(http.MethodGet)
	me.HandleFunc("/appointments", r.appointmentHandler.GetMyMotherAppointments).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
