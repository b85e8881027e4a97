// Package linkcheck visits course URLs and reports the ones that fail.
package linkcheck

import (
	"context"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"path-pilot/internal/config"
	"path-pilot/internal/domain/course"

	"github.com/charmbracelet/log"
	"github.com/gocolly/colly/v2"
)

const userAgent = "path-pilot-linkcheck/1.0"

type Status string

const (
	StatusOK      Status = "ok"
	StatusBroken  Status = "broken"
	StatusSkipped Status = "skipped"
)

type Result struct {
	CourseID   string `json:"course_id"`
	URL        string `json:"url"`
	Status     Status `json:"status"`
	StatusCode int    `json:"status_code,omitempty"`
	Error      string `json:"error,omitempty"`
}

type Report struct {
	Checked int      `json:"checked"`
	Skipped int      `json:"skipped"`
	Broken  []Result `json:"broken"`
	Results []Result `json:"results"`
}

func (r Report) OK() bool { return len(r.Broken) == 0 }

type Checker struct {
	workers int
	rate    int
	timeout time.Duration
	logger  *log.Logger
}

func NewChecker(cfg config.LinkCheckConfig, logger *log.Logger) *Checker {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Checker{workers: cfg.Workers, rate: cfg.RatePerSecond, timeout: timeout, logger: logger}
}

// Check visits every course URL. Placeholder and non-http URLs are skipped.
// Results follow catalog order.
func (c *Checker) Check(ctx context.Context, courses []course.Course) (Report, error) {
	results := make([]Result, len(courses))
	pool := newWorkerPool(c.workers, c.rate)
	pool.start(ctx)

	for i, crs := range courses {
		raw := strings.TrimSpace(crs.URL)
		results[i] = Result{CourseID: crs.ID, URL: raw}
		if !checkable(raw) {
			results[i].Status = StatusSkipped
			continue
		}
		if !pool.submit(ctx, func(ctx context.Context) {
			results[i] = c.visit(ctx, crs.ID, raw)
		}) {
			break
		}
	}
	pool.wait()

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	rep := Report{Results: results, Broken: []Result{}}
	for _, r := range results {
		switch r.Status {
		case StatusSkipped:
			rep.Skipped++
		case StatusBroken:
			rep.Checked++
			rep.Broken = append(rep.Broken, r)
		default:
			rep.Checked++
		}
	}
	sort.SliceStable(rep.Broken, func(i, j int) bool { return rep.Broken[i].CourseID < rep.Broken[j].CourseID })
	return rep, nil
}

func checkable(raw string) bool {
	if raw == "" || raw == course.DefaultURL {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (c *Checker) visit(ctx context.Context, courseID, target string) Result {
	res := Result{CourseID: courseID, URL: target, Status: StatusBroken}
	if ctx.Err() != nil {
		res.Error = ctx.Err().Error()
		return res
	}

	col := colly.NewCollector(colly.AllowURLRevisit(), colly.UserAgent(userAgent))
	col.SetRequestTimeout(c.timeout)

	var (
		mu     sync.Mutex
		status int
		reqErr error
	)
	col.OnResponse(func(r *colly.Response) {
		mu.Lock()
		status = r.StatusCode
		mu.Unlock()
	})
	col.OnError(func(r *colly.Response, err error) {
		mu.Lock()
		if r != nil {
			status = r.StatusCode
		}
		reqErr = err
		mu.Unlock()
	})

	if err := col.Visit(target); err != nil && reqErr == nil {
		reqErr = err
	}

	mu.Lock()
	defer mu.Unlock()
	res.StatusCode = status
	switch {
	case reqErr != nil:
		res.Error = reqErr.Error()
	case status >= 200 && status < 400:
		res.Status = StatusOK
	default:
		res.Error = "unexpected status"
	}

	if c.logger != nil {
		c.logger.Debug("link checked", "course", courseID, "url", target, "status", res.Status, "code", status)
	}
	return res
}
