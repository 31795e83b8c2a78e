package handlers

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"painterflow/internal/database"
	"painterflow/internal/httpx"
	"painterflow/internal/models"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type jobForm struct {
	CustomerID  string `form:"customer_id" json:"customer_id"`
	Date        string `form:"date" json:"date"`
	Status      string `form:"status" json:"status"`
	Areas       string `form:"areas" json:"areas"`
	PaintColors string `form:"paint_colors" json:"paint_colors"`
	Finish      string `form:"finish" json:"finish"`
	Materials   string `form:"materials" json:"materials"`
	Notes       string `form:"notes" json:"notes"`
}

func (f jobForm) patch() (database.JobPatch, error) {
	v := httpx.Violations{}
	v.Required("date", f.Date)

	var day time.Time
	if strings.TrimSpace(f.Date) != "" {
		var err error
		day, err = time.Parse(dateLayout, strings.TrimSpace(f.Date))
		if err != nil {
			v.Add("date", "invalid")
		}
	}

	status := models.JobStatus(f.Status)
	if status == "" {
		status = models.JobScheduled
	}
	if !status.Valid() {
		v.Add("status", "invalid")
	}

	finish := strings.TrimSpace(f.Finish)
	if finish != "" && !slices.Contains(models.Finishes, finish) {
		v.Add("finish", "invalid")
	}
	if !v.Empty() {
		return database.JobPatch{}, v
	}

	return database.JobPatch{
		CustomerID:  models.NullString(strings.TrimSpace(f.CustomerID)),
		Date:        day,
		Status:      status,
		Areas:       models.NullString(strings.TrimSpace(f.Areas)),
		PaintColors: models.NullString(strings.TrimSpace(f.PaintColors)),
		Finish:      models.NullString(finish),
		Materials:   models.NullString(strings.TrimSpace(f.Materials)),
		Notes:       models.NullString(strings.TrimSpace(f.Notes)),
	}, nil
}

func formFromJob(j *models.Job) jobForm {
	return jobForm{
		CustomerID:  models.Deref(j.CustomerID),
		Date:        j.Day().Format(dateLayout),
		Status:      string(j.Status),
		Areas:       models.Deref(j.Areas),
		PaintColors: models.Deref(j.PaintColors),
		Finish:      models.Deref(j.Finish),
		Materials:   models.Deref(j.Materials),
		Notes:       models.Deref(j.Notes),
	}
}

// jobList is the JSON shape of the jobs page.
type jobList struct {
	Upcoming []models.Job `json:"upcoming"`
	Past     []models.Job `json:"past"`
}

// partitionJobs splits jobs into upcoming and past around today. Every job
// lands in exactly one of the two.
func partitionJobs(jobs []models.Job, today time.Time) jobList {
	out := jobList{Upcoming: []models.Job{}, Past: []models.Job{}}
	for _, j := range jobs {
		if j.Upcoming(today) {
			out.Upcoming = append(out.Upcoming, j)
		} else {
			out.Past = append(out.Past, j)
		}
	}
	return out
}

func (h *Handler) ListJobs(c *gin.Context) {
	h.jobsPage(c, http.StatusOK, "", jobForm{})
}

func (h *Handler) jobsPage(c *gin.Context, status int, errMsg string, form jobForm) {
	ctx := c.Request.Context()
	uid := userID(c)

	jobs, err := h.Store.ListJobs(ctx, uid)
	if err != nil {
		fail(c, err, nil)
		return
	}
	list := partitionJobs(jobs, h.today(h.location(c)))

	if httpx.WantsJSON(c) {
		c.JSON(status, list)
		return
	}
	customers, err := h.Store.CustomerRefs(ctx, uid)
	if err != nil {
		fail(c, err, nil)
		return
	}
	render(c, status, "jobs.html", gin.H{
		"Title":     "Jobs",
		"Nav":       "jobs",
		"upcoming":  list.Upcoming,
		"past":      list.Past,
		"customers": customers,
		"statuses":  models.JobStatuses,
		"finishes":  models.Finishes,
		"form":      form,
		"ShowForm":  errMsg != "",
		"error":     errMsg,
	})
}

func (h *Handler) CreateJob(c *gin.Context) {
	var form jobForm
	page := func(status int, msg string) { h.jobsPage(c, status, msg, form) }

	if err := c.ShouldBind(&form); err != nil {
		fail(c, httpx.Violations{"form": "invalid"}, page)
		return
	}
	p, err := form.patch()
	if err != nil {
		fail(c, err, page)
		return
	}

	job := &models.Job{
		CustomerID:  p.CustomerID,
		Date:        database.DateOnly(p.Date),
		Status:      p.Status,
		Areas:       p.Areas,
		PaintColors: p.PaintColors,
		Finish:      p.Finish,
		Materials:   p.Materials,
		Notes:       p.Notes,
	}
	if err := h.Store.CreateJob(c.Request.Context(), userID(c), job); err != nil {
		fail(c, err, page)
		return
	}
	done(c, http.StatusCreated, "/app/jobs", job)
}

func (h *Handler) ShowJob(c *gin.Context) {
	job, err := h.Store.GetJob(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		fail(c, err, nil)
		return
	}
	h.jobPage(c, http.StatusOK, "", job, formFromJob(job), c.Query("edit") == "1")
}

func (h *Handler) jobPage(c *gin.Context, status int, errMsg string, job *models.Job, form jobForm, editing bool) {
	if httpx.WantsJSON(c) {
		c.JSON(status, job)
		return
	}
	customers, err := h.Store.CustomerRefs(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err, nil)
		return
	}
	render(c, status, "job_detail.html", gin.H{
		"Title":     "Job",
		"Nav":       "jobs",
		"job":       job,
		"form":      form,
		"editing":   editing || errMsg != "",
		"customers": customers,
		"statuses":  models.JobStatuses,
		"finishes":  models.Finishes,
		"error":     errMsg,
	})
}

// UpdateJob replaces every editable field of a job with the submitted form.
func (h *Handler) UpdateJob(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)
	id := c.Param("id")

	var form jobForm
	page := func(status int, msg string) {
		job, err := h.Store.GetJob(ctx, uid, id)
		if err != nil {
			fail(c, err, nil)
			return
		}
		h.jobPage(c, status, msg, job, form, true)
	}

	if err := c.ShouldBind(&form); err != nil {
		fail(c, httpx.Violations{"form": "invalid"}, page)
		return
	}
	p, err := form.patch()
	if err != nil {
		fail(c, err, page)
		return
	}
	job, err := h.Store.UpdateJob(ctx, uid, id, p)
	if err != nil {
		fail(c, err, page)
		return
	}
	done(c, http.StatusOK, "/app/jobs/"+job.ID, job)
}

func (h *Handler) DeleteJob(c *gin.Context) {
	if !confirmed(c) {
		fail(c, errNotConfirmed, nil)
		return
	}
	if err := h.Store.DeleteJob(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		fail(c, err, nil)
		return
	}
	done(c, http.StatusNoContent, "/app/jobs", nil)
}
