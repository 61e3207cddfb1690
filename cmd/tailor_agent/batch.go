package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/jonathan/application-tailor/internal/ingestion"
	"github.com/jonathan/application-tailor/internal/tailoring"
	"github.com/jonathan/application-tailor/internal/types"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Tailor one resume to every job in a manifest",
	Long: `Tailor one resume to each job listed in a YAML or JSON manifest, running up to --concurrency
jobs at a time. Each job writes its outputs to <out>/<company>-<title>/. A failed job is reported
and does not stop the others unless --fail-fast is set.

Manifest format:
  jobs:
    - company_name: Acme
      job_title: Backend Engineer
      job_file: jobs/acme.txt      # or job_url, or job_description inline
      requirements: Go, Postgres`,
	RunE: runBatch,
}

var (
	batchResume          string
	batchManifest        string
	batchProfile         string
	batchOut             string
	batchConcurrency     int
	batchFailFast        bool
	batchSkipApplication bool
)

func init() {
	batchCmd.Flags().StringVarP(&batchResume, "resume", "r", "", "Path to resume file (required)")
	batchCmd.Flags().StringVarP(&batchManifest, "manifest", "m", "", "Path to job manifest (required)")
	batchCmd.Flags().StringVarP(&batchProfile, "profile", "p", "", "Path to candidate file")
	batchCmd.Flags().StringVarP(&batchOut, "out", "o", "", "Output directory (defaults to output_dir from config)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 2, "Jobs tailored concurrently")
	batchCmd.Flags().BoolVar(&batchFailFast, "fail-fast", false, "Stop at the first failed job")
	batchCmd.Flags().BoolVar(&batchSkipApplication, "skip-application", false, "Skip cover letters and emails")
	if err := batchCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := batchCmd.MarkFlagRequired("manifest"); err != nil {
		panic(fmt.Sprintf("failed to mark manifest flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

// batchJob is one manifest entry
type batchJob struct {
	CompanyName    string `json:"company_name" yaml:"company_name"`
	JobTitle       string `json:"job_title" yaml:"job_title"`
	JobFile        string `json:"job_file,omitempty" yaml:"job_file"`
	JobURL         string `json:"job_url,omitempty" yaml:"job_url"`
	JobDescription string `json:"job_description,omitempty" yaml:"job_description"`
	Requirements   string `json:"requirements,omitempty" yaml:"requirements"`
}

type batchManifestFile struct {
	Jobs []batchJob `json:"jobs" yaml:"jobs"`
}

// loadManifest reads a manifest; job_file paths are relative to the manifest
func loadManifest(path string) ([]batchJob, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	// JSON manifests are valid YAML
	var manifest batchManifestFile
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if len(manifest.Jobs) == 0 {
		return nil, fmt.Errorf("manifest %s lists no jobs", path)
	}

	base := filepath.Dir(path)
	for i, job := range manifest.Jobs {
		sources := 0
		for _, s := range []string{job.JobFile, job.JobURL, job.JobDescription} {
			if strings.TrimSpace(s) != "" {
				sources++
			}
		}
		if sources != 1 {
			return nil, fmt.Errorf("job %d: exactly one of job_file, job_url or job_description is required", i+1)
		}
		if job.JobFile != "" && !filepath.IsAbs(job.JobFile) {
			manifest.Jobs[i].JobFile = filepath.Join(base, job.JobFile)
		}
	}
	return manifest.Jobs, nil
}

func (j batchJob) resolve(ctx context.Context) (*types.JobData, error) {
	if j.JobDescription != "" {
		return &types.JobData{
			CompanyName:    j.CompanyName,
			JobTitle:       j.JobTitle,
			JobDescription: j.JobDescription,
			Requirements:   j.Requirements,
		}, nil
	}
	return loadJob(ctx, jobFlags{
		path:         j.JobFile,
		url:          j.JobURL,
		company:      j.CompanyName,
		title:        j.JobTitle,
		requirements: j.Requirements,
	})
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// slug turns company and title into a directory name
func slug(parts ...string) string {
	joined := strings.ToLower(strings.Join(parts, " "))
	s := strings.Trim(slugPattern.ReplaceAllString(joined, "-"), "-")
	if s == "" {
		return "job"
	}
	return s
}

// batchResult is the outcome of one manifest entry
type batchResult struct {
	Job    string
	OutDir string
	Score  float64
	Err    error
}

func runBatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	if batchConcurrency <= 0 {
		return fmt.Errorf("--concurrency must be positive")
	}

	doc, _, err := ingestion.LoadDocument(batchResume)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}
	jobs, err := loadManifest(batchManifest)
	if err != nil {
		return err
	}
	profile, certs, err := loadCandidate(batchProfile)
	if err != nil {
		return err
	}

	svc, closeFn, err := newService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeFn()

	outRoot := firstNonEmpty(batchOut, cfg.OutputDir)
	resumeName := tailoredName(batchResume, doc.Dialect)
	results := make([]batchResult, len(jobs))
	seen := make(map[string]int)
	var seenMu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, job := range jobs {
		g.Go(func() error {
			name := slug(job.CompanyName, job.JobTitle)
			seenMu.Lock()
			seen[name]++
			if n := seen[name]; n > 1 {
				name = fmt.Sprintf("%s-%d", name, n)
			}
			seenMu.Unlock()

			results[i] = batchResult{Job: name, OutDir: filepath.Join(outRoot, name)}
			log := logger.WithFields(logrus.Fields{"job": name, "index": i + 1})

			err := tailorOne(gctx, svc, *doc, job, profile, certs, cfg.MaxCertifications, resumeName, &results[i])
			if err != nil {
				results[i].Err = err
				log.WithError(err).Error("job failed")
				if batchFailFast {
					return fmt.Errorf("%s: %w", name, err)
				}
				return nil
			}
			log.WithField("ats_score", results[i].Score).Info("job tailored")
			return nil
		})
	}
	groupErr := g.Wait()

	failed := 0
	for _, r := range results {
		switch {
		case r.Job == "":
			continue
		case r.Err != nil:
			failed++
			fmt.Fprintf(cmd.OutOrStdout(), "FAIL %-40s %v\n", r.Job, r.Err)
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "OK   %-40s ats=%.0f %s\n", r.Job, r.Score, r.OutDir)
		}
	}

	if groupErr != nil {
		return groupErr
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", failed, len(jobs))
	}
	return nil
}

func tailorOne(ctx context.Context, svc *tailoring.Service, doc types.Document, job batchJob, profile *types.UserProfile,
	certs []types.Certification, maxCerts int, resumeName string, result *batchResult) error {
	jobData, err := job.resolve(ctx)
	if err != nil {
		return err
	}

	report, err := svc.Tailor(ctx, tailoring.TailorRequest{
		Document:          doc,
		Job:               *jobData,
		Profile:           profile,
		Certifications:    certs,
		MaxCertifications: maxCerts,
		SkipApplication:   batchSkipApplication,
	})
	if err != nil {
		return err
	}

	artifacts, err := tailorArtifacts(resumeName, report)
	if err != nil {
		return err
	}
	if _, err := ingestion.WriteOutput(result.OutDir, artifacts); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	result.Score = report.Ats.Score
	return nil
}
