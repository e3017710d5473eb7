package adapthttp

import (
	"net/http"

	"fittrack/internal/domain"
)

func (s *Server) handleAdminListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.svc.Admin.Users(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) handleAdminAssignRole(w http.ResponseWriter, r *http.Request) {
	p, err := parsePayload(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := s.svc.Admin.AssignRole(r.Context(), p, actorID(r.Context())); err != nil {
		respondError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "User role updated successfully")
}

func (s *Server) handleAdminDeactivateUser(w http.ResponseWriter, r *http.Request) {
	p, err := parsePayload(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := s.svc.Admin.DeactivateUser(r.Context(), p, actorID(r.Context())); err != nil {
		respondError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "User deactivated successfully")
}

func (s *Server) handleAdminRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := s.svc.Admin.Roles(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, roles)
}

func (s *Server) handleAdminAudit(w http.ResponseWriter, r *http.Request) {
	userID, err := int64Query(r, "user_id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	start, end, err := dateRange(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	entries, err := s.svc.Admin.Audit(r.Context(), domain.AuditFilter{UserID: userID, StartDate: start, EndDate: end})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleAdminAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := s.svc.Admin.ErrorAlerts(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}

func (s *Server) handleAdminBackups(w http.ResponseWriter, r *http.Request) {
	backups, err := s.svc.Admin.Backups(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, backups)
}

func (s *Server) handleAdminRequestBackup(w http.ResponseWriter, r *http.Request) {
	id, err := s.svc.Admin.RequestBackup(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeCreated(w, "Backup requested", "backup_id", id)
}

func (s *Server) handleAdminSystemMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := s.svc.Admin.SystemMetrics(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}
