package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/csg33k/employee-directory/internal/domain"
	"github.com/csg33k/employee-directory/internal/metrics"
	"github.com/csg33k/employee-directory/internal/ports"
	"github.com/csg33k/employee-directory/internal/templates"
)

// formFields are the inputs read from a creation form submission.
var formFields = []string{
	domain.FieldName,
	domain.FieldEmail,
	domain.FieldGender,
	domain.FieldDepartment,
}

type Handler struct {
	repo      ports.EmployeeRepository
	exporters []ports.DirectoryExporter
	metrics   *metrics.Metrics
	log       *slog.Logger
}

func New(repo ports.EmployeeRepository, m *metrics.Metrics, log *slog.Logger, exporters ...ports.DirectoryExporter) *Handler {
	return &Handler{
		repo:      repo,
		exporters: exporters,
		metrics:   m,
		log:       log,
	}
}

// SyncMetrics sets the directory size gauge from the store, for stores that
// start non-empty.
func (h *Handler) SyncMetrics(ctx context.Context) error {
	employees, err := h.repo.ListEmployees(ctx)
	if err != nil {
		return err
	}
	h.metrics.DirectorySize.Set(float64(len(employees)))
	return nil
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.log))
	r.Use(middleware.Recoverer)

	r.Get("/", h.index)
	r.Post("/employees", h.createEmployee)
	r.Delete("/employees/{id}", h.deleteEmployee)
	r.Post("/employees/{id}/delete", h.deleteEmployee)
	r.Get("/employee/{id}", h.viewEmployee)
	for _, exp := range h.exporters {
		r.Get("/employees."+exp.Extension(), h.exportDirectory(exp))
	}
	r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	return r
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	employees, err := h.repo.ListEmployees(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, templates.Index(templates.ManagerData{
		Form:      domain.NewEmployeeForm(),
		Employees: employees,
	}))
}

// createEmployee appends a record built from the form. Incomplete
// submissions are dropped without an error and the entered values are
// rendered back.
func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	form := parseEmployeeForm(r)

	if !form.Complete() {
		h.metrics.SubmissionsIgnored.Inc()
		h.log.DebugContext(r.Context(), "ignoring incomplete submission",
			"has_name", form.Name != "", "has_email", form.Email != "", "gender", form.Gender)
		h.renderManager(w, r, form)
		return
	}

	e := form.Employee()
	if err := h.repo.AddEmployee(r.Context(), &e); err != nil {
		h.serverError(w, r, err)
		return
	}
	h.metrics.EmployeesAdded.Inc()
	h.metrics.DirectorySize.Inc()
	h.log.InfoContext(r.Context(), "employee added", "id", e.ID, "department", e.Department)

	if !isHTMX(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.renderManager(w, r, domain.NewEmployeeForm())
}

// deleteEmployee removes a record without confirmation. An id that no longer
// resolves is a no-op.
func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if ok {
		err := h.repo.DeleteEmployee(r.Context(), id)
		switch {
		case err == nil:
			h.metrics.EmployeesDeleted.Inc()
			h.metrics.DirectorySize.Dec()
			h.log.InfoContext(r.Context(), "employee deleted", "id", id)
		case errors.Is(err, ports.ErrNotFound):
			h.log.DebugContext(r.Context(), "delete of unknown employee", "id", id)
		default:
			h.serverError(w, r, err)
			return
		}
	}

	if !isHTMX(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	employees, err := h.repo.ListEmployees(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, templates.EmployeeList(employees))
}

// viewEmployee resolves the route id against the current store on every
// request, so an id deleted since the link was rendered shows the
// not-found state.
func (h *Handler) viewEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		h.employeeNotFound(w, r)
		return
	}
	e, err := h.repo.GetEmployee(r.Context(), id)
	if errors.Is(err, ports.ErrNotFound) {
		h.employeeNotFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.metrics.DetailLookups.WithLabelValues(metrics.LookupFound).Inc()
	h.render(w, r, http.StatusOK, templates.Detail(e))
}

func (h *Handler) employeeNotFound(w http.ResponseWriter, r *http.Request) {
	h.metrics.DetailLookups.WithLabelValues(metrics.LookupNotFound).Inc()
	h.render(w, r, http.StatusNotFound, templates.Detail(nil))
}

// exportDirectory serves the whole directory as a download in exp's format.
func (h *Handler) exportDirectory(exp ports.DirectoryExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		employees, err := h.repo.ListEmployees(r.Context())
		if err != nil {
			h.serverError(w, r, err)
			return
		}
		var buf bytes.Buffer
		if err := exp.Export(r.Context(), employees, &buf); err != nil {
			h.serverError(w, r, err)
			return
		}
		h.metrics.Exports.WithLabelValues(exp.Extension()).Inc()
		filename := fmt.Sprintf("employees_%s.%s", time.Now().Format("20060102"), exp.Extension())
		w.Header().Set("Content-Type", exp.ContentType())
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		w.Write(buf.Bytes())
	}
}

func (h *Handler) renderManager(w http.ResponseWriter, r *http.Request, form domain.EmployeeForm) {
	employees, err := h.repo.ListEmployees(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	data := templates.ManagerData{Form: form, Employees: employees}
	if isHTMX(r) {
		h.render(w, r, http.StatusOK, templates.Manager(data))
		return
	}
	h.render(w, r, http.StatusOK, templates.Index(data))
}

// render buffers a component and writes it with status, so a template
// failure still produces a clean 500.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		h.serverError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "request failed",
		"method", r.Method, "path", r.URL.Path, "err", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// parseEmployeeForm applies each submitted field to a fresh form. Fields
// absent from the request keep their defaults.
func parseEmployeeForm(r *http.Request) domain.EmployeeForm {
	form := domain.NewEmployeeForm()
	for _, f := range formFields {
		if r.Form.Has(f) {
			form.Set(f, r.Form.Get(f))
		}
	}
	return form
}

// parseID accepts a non-negative base-10 integer.
func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
