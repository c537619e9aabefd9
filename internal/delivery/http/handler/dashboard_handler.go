package handler

import (
	"net/http"
	"strconv"

	"patient-vitals-service/internal/delivery/http/view"
	"patient-vitals-service/internal/session"
	"patient-vitals-service/internal/usecase"
	"patient-vitals-service/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type DashboardHandler struct {
	patientUsecase usecase.PatientUsecase
	waistUsecase   usecase.WaistUsecase
	sessions       *session.Manager
	renderer       *view.Renderer
	validator      *validator.CustomValidator
	log            *logrus.Logger
}

func NewDashboardHandler(
	patientUsecase usecase.PatientUsecase,
	waistUsecase usecase.WaistUsecase,
	sessions *session.Manager,
	renderer *view.Renderer,
	validator *validator.CustomValidator,
	log *logrus.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		patientUsecase: patientUsecase,
		waistUsecase:   waistUsecase,
		sessions:       sessions,
		renderer:       renderer,
		validator:      validator,
		log:            log,
	}
}

// Dashboard renders the owned record list, optionally narrowed by
// ?search=, together with any one-shot calculator result and flashes.
func (d *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := requestSession(w, r)
	if !ok {
		return
	}

	search := r.URL.Query().Get("search")

	page := view.DashboardPage{
		Page: view.Page{
			Username: sess.Username,
		},
		SearchQuery: search,
	}

	list, err := d.patientUsecase.ListPatients(r.Context(), sess.UserID, search)
	if err != nil {
		sess.AddFlash(session.FlashDanger, "Failed to load patient records.")
	} else {
		page.Patients = list.Patients
	}

	waistResult := sess.PopWaistResult()
	page.WaistResult = waistResult
	page.Flashes = sess.PopFlashes()
	if waistResult != nil || len(page.Flashes) > 0 {
		if err := d.sessions.Save(r.Context(), sess); err != nil {
			d.log.Warnf("Failed to save session: %+v", err)
		}
	}

	d.renderer.Render(w, "dashboard", page)
}

// Submit handles the dashboard POST. The form discriminates "add
// patient" from "calculate waist" with a hidden field; either way the
// response is a redirect back to the dashboard so results arrive as
// one-shot session values.
func (d *DashboardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sess, ok := requestSession(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		flashAndRedirect(w, r, d.sessions, sess, session.FlashDanger, "An error occurred. Please try again.", "/dashboard")
		return
	}

	switch {
	case r.PostForm.Has("add_patient"):
		d.addPatient(w, r, sess)
	case r.PostForm.Has("calculate_waist"):
		d.calculateWaist(w, r, sess)
	default:
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	}
}

func (d *DashboardHandler) addPatient(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	req, err := decodeAddPatientForm(r)
	if err != nil {
		flashAndRedirect(w, r, d.sessions, sess, session.FlashDanger, "Please fill out all fields.", "/dashboard")
		return
	}

	if err := d.validator.Validate(req); err != nil {
		flashAndRedirect(w, r, d.sessions, sess, session.FlashDanger, firstValidationMessage(d.validator, err), "/dashboard")
		return
	}

	if _, err := d.patientUsecase.AddPatient(r.Context(), sess.UserID, req); err != nil {
		switch err {
		case usecase.ErrPatientIDAlreadyExists:
			flashAndRedirect(w, r, d.sessions, sess, session.FlashDanger, "Patient ID already exists.", "/dashboard")
		default:
			flashAndRedirect(w, r, d.sessions, sess, session.FlashDanger, "An error occurred. Please try again.", "/dashboard")
		}
		return
	}

	flashAndRedirect(w, r, d.sessions, sess, session.FlashSuccess, "Patient record added successfully.", "/dashboard")
}

func (d *DashboardHandler) calculateWaist(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	req, err := decodeWaistCalcForm(r)
	if err != nil {
		flashAndRedirect(w, r, d.sessions, sess, session.FlashDanger, "Please fill out all fields.", "/dashboard")
		return
	}

	if err := d.validator.Validate(req); err != nil {
		flashAndRedirect(w, r, d.sessions, sess, session.FlashDanger, "Please fill out all fields.", "/dashboard")
		return
	}

	result, err := d.waistUsecase.Estimate(req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidBodyType:
			flashAndRedirect(w, r, d.sessions, sess, session.FlashDanger, "Please select a valid body type.", "/dashboard")
		default:
			flashAndRedirect(w, r, d.sessions, sess, session.FlashDanger, "An error occurred. Please try again.", "/dashboard")
		}
		return
	}

	sess.WaistResult = &session.WaistResult{
		Estimate: result.Estimate,
		Warning:  result.AtRisk,
	}
	if err := d.sessions.Save(r.Context(), sess); err != nil {
		d.log.Warnf("Failed to save session: %+v", err)
	}

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// DeletePatient removes an owned record; ownership violations and
// unknown ids surface as flash messages, never as raw errors.
func (d *DashboardHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	sess, ok := requestSession(w, r)
	if !ok {
		return
	}

	recordID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		flashAndRedirect(w, r, d.sessions, sess, session.FlashDanger, "Patient record not found.", "/dashboard")
		return
	}

	if err := d.patientUsecase.DeletePatient(r.Context(), recordID, sess.UserID); err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			flashAndRedirect(w, r, d.sessions, sess, session.FlashDanger, "Patient record not found.", "/dashboard")
		case usecase.ErrNotRecordOwner:
			flashAndRedirect(w, r, d.sessions, sess, session.FlashDanger, "You are not authorized to delete this patient.", "/dashboard")
		default:
			flashAndRedirect(w, r, d.sessions, sess, session.FlashDanger, "An error occurred. Please try again.", "/dashboard")
		}
		return
	}

	flashAndRedirect(w, r, d.sessions, sess, session.FlashSuccess, "Patient record deleted successfully.", "/dashboard")
}
