package http

import (
	"net/http"

	"github.com/Dixit-Goti/hospital-management/internal/delivery/http/handler"
	"github.com/Dixit-Goti/hospital-management/internal/delivery/http/middleware"
	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	patientHandler      *handler.PatientHandler
	medicineHandler     *handler.MedicineHandler
	visitHandler        *handler.VisitHandler
	prescriptionHandler *handler.PrescriptionHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      mux.MiddlewareFunc
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	medicineHandler *handler.MedicineHandler,
	visitHandler *handler.VisitHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware mux.MiddlewareFunc,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		patientHandler:      patientHandler,
		medicineHandler:     medicineHandler,
		visitHandler:        visitHandler,
		prescriptionHandler: prescriptionHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	api := r.router.PathPrefix("/api").Subrouter()

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/doctor", r.authHandler.LoginDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/patient", r.authHandler.LoginPatient).Methods(http.MethodPost)

	// Per-route guards instead of guarded subrouters: the role sets overlap
	// on shared paths like /patients, so prefix-based grouping cannot express
	// them without shadowing.
	doctorOnly := r.guard(entity.RoleDoctor)
	patientOnly := r.guard(entity.RolePatient)
	anyRole := r.guard(entity.RoleDoctor, entity.RolePatient)

	// Patient management (doctor) and self-service (patient)
	api.Handle("/patients/register", doctorOnly(r.patientHandler.Register)).Methods(http.MethodPost)
	api.Handle("/patients", doctorOnly(r.patientHandler.List)).Methods(http.MethodGet)
	api.Handle("/patients/me", patientOnly(r.patientHandler.Profile)).Methods(http.MethodGet)
	api.Handle("/patients/me/password", patientOnly(r.patientHandler.ChangePassword)).Methods(http.MethodPatch)
	api.Handle("/patients/{id}", doctorOnly(r.patientHandler.Update)).Methods(http.MethodPut)
	api.Handle("/patients/{id}/deactivate", doctorOnly(r.patientHandler.Deactivate)).Methods(http.MethodPatch)

	// Medicine catalog (doctor)
	api.Handle("/medicines", doctorOnly(r.medicineHandler.Create)).Methods(http.MethodPost)
	api.Handle("/medicines", doctorOnly(r.medicineHandler.Search)).Methods(http.MethodGet)
	api.Handle("/medicines/{id}", doctorOnly(r.medicineHandler.Update)).Methods(http.MethodPut)
	api.Handle("/medicines/{id}/deactivate", doctorOnly(r.medicineHandler.Deactivate)).Methods(http.MethodPatch)

	// Visits: writes are doctor-only, history reads are role-scoped inside
	// the usecase
	api.Handle("/visits", doctorOnly(r.visitHandler.Create)).Methods(http.MethodPost)
	api.Handle("/visits", anyRole(r.visitHandler.List)).Methods(http.MethodGet)
	api.Handle("/visits/{id}", doctorOnly(r.visitHandler.Update)).Methods(http.MethodPut)
	api.Handle("/visits/{id}/deactivate", doctorOnly(r.visitHandler.Deactivate)).Methods(http.MethodPatch)

	// Prescriptions: same split as visits
	api.Handle("/prescriptions", doctorOnly(r.prescriptionHandler.Create)).Methods(http.MethodPost)
	api.Handle("/prescriptions", anyRole(r.prescriptionHandler.List)).Methods(http.MethodGet)
	api.Handle("/prescriptions/{id}", doctorOnly(r.prescriptionHandler.Update)).Methods(http.MethodPut)
	api.Handle("/prescriptions/{id}/deactivate", doctorOnly(r.prescriptionHandler.Deactivate)).Methods(http.MethodPatch)

	// Audit trail (doctor)
	api.Handle("/audit-logs", doctorOnly(r.auditLogHandler.List)).Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware)

	return r.router
}

// guard chains authentication and a role check in front of a handler.
func (r *Router) guard(roles ...string) func(http.HandlerFunc) http.Handler {
	requireRole := middleware.RequireRole(roles...)
	return func(h http.HandlerFunc) http.Handler {
		return r.authMiddleware.Handle(requireRole(h))
	}
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
