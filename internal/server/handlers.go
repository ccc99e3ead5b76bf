package server

import (
	"io"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/skillscope/skillscope/internal/intake"
	"github.com/skillscope/skillscope/internal/matching"
	"github.com/skillscope/skillscope/internal/profile"
	"github.com/skillscope/skillscope/internal/recommend"
	"github.com/skillscope/skillscope/internal/session"
)

// uploadField is the multipart form field carrying the resume document.
const uploadField = "resume"

type handlers struct {
	intake *intake.Adapter
	store  *session.Store
	logger *zap.Logger
}

func newHandlers(adapter *intake.Adapter, store *session.Store, logger *zap.Logger) *handlers {
	return &handlers{intake: adapter, store: store, logger: logger}
}

func (h *handlers) registerRoutes(r fiber.Router) {
	r.Get("/healthz", h.health)

	api := r.Group("/api/v1")
	api.Get("/roles", h.listRoles)
	api.Post("/resume", h.uploadNew)

	sess := api.Group("/sessions/:id")
	sess.Get("/", h.getSession)
	sess.Delete("/", h.deleteSession)
	sess.Post("/resume", h.uploadAgain)
	sess.Get("/skills", h.listSkills)
	sess.Post("/skills", h.addSkill)
	sess.Put("/skills/:index", h.updateSkill)
	sess.Delete("/skills/:index", h.removeSkill)
	sess.Get("/analysis", h.analysis)
	sess.Get("/summary", h.summary)
}

func sessionError(c fiber.Ctx, err error) error {
	status, msg := mapSessionError(err)
	return respondError(c, status, msg)
}

func (h *handlers) health(c fiber.Ctx) error {
	return respondOK(c, fiber.StatusOK, fiber.Map{"status": "ok"})
}

func (h *handlers) listRoles(c fiber.Ctx) error {
	return respondOK(c, fiber.StatusOK, fiber.Map{
		"roles":   matching.Roles(),
		"default": matching.DefaultRole,
	})
}

type uploadData struct {
	SessionID string `json:"sessionId"`
	*profile.ResumeData
}

// uploadNew creates a session and parses the uploaded resume into it.
func (h *handlers) uploadNew(c fiber.Ctx) error {
	sess := h.store.Create()

	resume, status, msg := h.runUpload(c, sess)
	if resume == nil {
		h.store.Delete(sess.ID)
		return respondError(c, status, msg)
	}

	return respondOK(c, fiber.StatusOK, uploadData{SessionID: sess.ID, ResumeData: resume})
}

// uploadAgain replaces an existing session's resume. Only one upload may be
// in flight per session; a concurrent one is rejected.
func (h *handlers) uploadAgain(c fiber.Ctx) error {
	sess, err := h.store.Get(c.Params("id"))
	if err != nil {
		return sessionError(c, err)
	}

	resume, status, msg := h.runUpload(c, sess)
	if resume == nil {
		return respondError(c, status, msg)
	}

	return respondOK(c, fiber.StatusOK, uploadData{SessionID: sess.ID, ResumeData: resume})
}

func (h *handlers) runUpload(c fiber.Ctx, sess *session.Session) (*profile.ResumeData, int, string) {
	if err := sess.BeginUpload(); err != nil {
		status, msg := mapSessionError(err)
		return nil, status, msg
	}

	fh, err := c.FormFile(uploadField)
	if err != nil {
		sess.FinishUpload(nil)
		return nil, fiber.StatusBadRequest, "no file provided"
	}

	file, err := fh.Open()
	if err != nil {
		sess.FinishUpload(nil)
		return nil, fiber.StatusBadRequest, "could not read uploaded file"
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		sess.FinishUpload(nil)
		return nil, fiber.StatusBadRequest, "could not read uploaded file"
	}

	resume, err := h.intake.ParseResume(c.Context(), data, fh.Header.Get("Content-Type"))
	if err != nil {
		sess.FinishUpload(nil)
		h.logger.Warn("resume upload rejected",
			zap.String("session_id", sess.ID),
			zap.String("filename", fh.Filename),
			zap.Error(err),
		)
		status, msg := mapIntakeError(err)
		return nil, status, msg
	}

	sess.FinishUpload(resume)

	h.logger.Info("resume uploaded",
		zap.String("session_id", sess.ID),
		zap.String("filename", fh.Filename),
	)

	return resume, 0, ""
}

type sessionData struct {
	SessionID string              `json:"sessionId"`
	Role      string              `json:"role"`
	Resume    *profile.ResumeData `json:"resume"`
}

func (h *handlers) getSession(c fiber.Ctx) error {
	sess, err := h.store.Get(c.Params("id"))
	if err != nil {
		return sessionError(c, err)
	}

	resume, err := sess.Resume()
	if err != nil {
		return sessionError(c, err)
	}

	return respondOK(c, fiber.StatusOK, sessionData{
		SessionID: sess.ID,
		Role:      sess.Role(),
		Resume:    resume,
	})
}

func (h *handlers) deleteSession(c fiber.Ctx) error {
	h.store.Delete(c.Params("id"))
	return respondOK(c, fiber.StatusOK, fiber.Map{"deleted": true})
}

func (h *handlers) listSkills(c fiber.Ctx) error {
	sess, err := h.store.Get(c.Params("id"))
	if err != nil {
		return sessionError(c, err)
	}

	skills, err := sess.Skills()
	if err != nil {
		return sessionError(c, err)
	}

	return respondOK(c, fiber.StatusOK, fiber.Map{"skills": skills})
}

type skillRequest struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	Category   string  `json:"category"`
}

func (h *handlers) addSkill(c fiber.Ctx) error {
	sess, err := h.store.Get(c.Params("id"))
	if err != nil {
		return sessionError(c, err)
	}

	var req skillRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid skill payload")
	}

	if err := sess.AddSkill(profile.Skill(req)); err != nil {
		return sessionError(c, err)
	}

	return h.listSkills(c)
}

func (h *handlers) updateSkill(c fiber.Ctx) error {
	sess, err := h.store.Get(c.Params("id"))
	if err != nil {
		return sessionError(c, err)
	}

	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid skill index")
	}

	var req skillRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid skill payload")
	}

	if err := sess.UpdateSkill(index, profile.Skill(req)); err != nil {
		return sessionError(c, err)
	}

	return h.listSkills(c)
}

func (h *handlers) removeSkill(c fiber.Ctx) error {
	sess, err := h.store.Get(c.Params("id"))
	if err != nil {
		return sessionError(c, err)
	}

	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid skill index")
	}

	if err := sess.RemoveSkill(index); err != nil {
		return sessionError(c, err)
	}

	return h.listSkills(c)
}

type analysisData struct {
	Role       string              `json:"role"`
	Gaps       []matching.Gap      `json:"gaps"`
	Statistics matching.Statistics `json:"statistics"`
}

// analysis runs the gap matcher for the session's skills against the target
// role. The role query parameter, when present, also becomes the session's
// role for subsequent calls.
func (h *handlers) analysis(c fiber.Ctx) error {
	sess, err := h.store.Get(c.Params("id"))
	if err != nil {
		return sessionError(c, err)
	}

	skills, err := sess.Skills()
	if err != nil {
		return sessionError(c, err)
	}

	role := h.resolveRole(c, sess)
	gaps := matching.ComputeGaps(skills, matching.RequirementsFor(role))

	return respondOK(c, fiber.StatusOK, analysisData{
		Role:       role,
		Gaps:       gaps,
		Statistics: matching.ComputeStatistics(gaps),
	})
}

type summaryData struct {
	profile.Summary
	Role            string          `json:"role"`
	Skills          []profile.Skill `json:"skills"`
	SkillGaps       []matching.Gap  `json:"skillGaps"`
	Recommendations []string        `json:"recommendations"`
	OverallMatch    int             `json:"overallMatch"`
}

// summary assembles the full profile view: aggregation, gaps against the
// target role, recommendations and the overall match percentage.
func (h *handlers) summary(c fiber.Ctx) error {
	sess, err := h.store.Get(c.Params("id"))
	if err != nil {
		return sessionError(c, err)
	}

	resume, err := sess.Resume()
	if err != nil {
		return sessionError(c, err)
	}

	role := h.resolveRole(c, sess)
	gaps := matching.ComputeGaps(resume.TopSkills, matching.RequirementsFor(role))
	stats := matching.ComputeStatistics(gaps)

	return respondOK(c, fiber.StatusOK, summaryData{
		Summary:         profile.Summarize(resume.Name, resume.YearsOfExperience, resume.TopSkills),
		Role:            role,
		Skills:          resume.TopSkills,
		SkillGaps:       gaps,
		Recommendations: recommend.Recommend(resume.YearsOfExperience, resume.TopSkills, role),
		OverallMatch:    stats.OverallMatchPercent,
	})
}

func (h *handlers) resolveRole(c fiber.Ctx, sess *session.Session) string {
	role := c.Query("role")
	if role == "" {
		return sess.Role()
	}

	if !matching.KnownRole(role) {
		h.logger.Debug("unknown role requested, using default catalog",
			zap.String("role", role),
			zap.String("fallback", matching.DefaultRole),
		)
	}

	sess.SetRole(role)
	return role
}
