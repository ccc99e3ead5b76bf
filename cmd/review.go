package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/skillscope/skillscope/internal/extract"
	"github.com/skillscope/skillscope/internal/intake"
	"github.com/skillscope/skillscope/internal/logger"
	"github.com/skillscope/skillscope/internal/matching"
	"github.com/skillscope/skillscope/internal/profile"
	"github.com/skillscope/skillscope/internal/recommend"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptAnalyze     = "Analyze against a role"
	PromptEditSkills  = "Review and edit skills"
	PromptShowSummary = "Show profile summary"
	PromptDone        = "Done"
	PromptBack        = "back"
	PromptAddSkill    = "Add a skill"
)

var errExit = errors.New("exit requested")

var reviewCmd = &cobra.Command{
	Use:   "review [resume.pdf]",
	Short: "Analyze a local resume interactively",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		review(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd)

	reviewCmd.Flags().StringP("role", "r", "", "target role to analyze against")
}

// review drives the interactive flow: parse the resume, let the user adjust
// the extracted skills, then print the gap analysis for the chosen role.
func review(cmd *cobra.Command, path string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	analyzer, err := newAnalyzer(ctx, config.AI, logger)
	if err != nil {
		logger.Fatal("building resume analyzer",
			zap.Error(err),
			zap.String("hint", "set GEMINI_API_KEY or the ai.gemini section in the configuration file"),
		)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal("reading resume file", zap.Error(err))
	}

	adapter := intake.New(extract.NewPDF(), analyzer, logger, 0)

	resume, err := adapter.ParseResume(ctx, data, "application/pdf")
	if err != nil {
		logger.Fatal("parsing resume", zap.Error(err))
	}

	role := strings.TrimSpace(cmd.Flag("role").Value.String())
	if role == "" {
		role = matching.DefaultRole
	}

	fmt.Printf("\nParsed resume for %s (%d years of experience, %d skills)\n\n",
		resume.Name, resume.YearsOfExperience, len(resume.TopSkills))

	for {
		_, action, err := (&promptui.Select{
			Label: "What next?",
			Items: []string{PromptAnalyze, PromptEditSkills, PromptShowSummary, PromptDone},
		}).Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleReviewAction(action, resume, &role); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleReviewAction(action string, resume *profile.ResumeData, role *string) error {
	switch action {
	case PromptAnalyze:
		selected, err := selectRole(*role)
		if err != nil {
			return err
		}
		*role = selected
		printAnalysis(resume, selected)
		return nil
	case PromptEditSkills:
		return editSkills(resume)
	case PromptShowSummary:
		printSummary(resume, *role)
		return nil
	case PromptDone:
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func selectRole(current string) (string, error) {
	roles := matching.Roles()

	cursor := 0
	for i, r := range roles {
		if r == current {
			cursor = i
		}
	}

	_, role, err := (&promptui.Select{
		Label:     "Target role",
		Items:     roles,
		CursorPos: cursor,
	}).Run()

	return role, err
}

func editSkills(resume *profile.ResumeData) error {
	for {
		items := make([]string, 0, len(resume.TopSkills)+2)
		for _, s := range resume.TopSkills {
			items = append(items, fmt.Sprintf("%s (%s, confidence %.2f)", s.Name, s.Category, s.Confidence))
		}
		items = append(items, PromptAddSkill, PromptBack)

		_, selected, err := (&promptui.Select{
			Label: "Choose a skill to remove, or an action",
			Items: items,
		}).Run()
		if err != nil {
			return err
		}

		switch selected {
		case PromptBack:
			return nil
		case PromptAddSkill:
			skill, err := promptSkill()
			if err != nil {
				return err
			}
			if err := resume.AddSkill(skill); err != nil {
				fmt.Printf("cannot add skill: %v\n", err)
			}
		default:
			for i, s := range resume.TopSkills {
				if strings.HasPrefix(selected, s.Name+" (") {
					if err := resume.RemoveSkill(i); err != nil {
						return err
					}
					break
				}
			}
		}
	}
}

func promptSkill() (profile.Skill, error) {
	name, err := (&promptui.Prompt{Label: "Skill name"}).Run()
	if err != nil {
		return profile.Skill{}, err
	}

	confidence, err := (&promptui.Prompt{
		Label:   "Confidence (0..1)",
		Default: "0.5",
		Validate: func(s string) error {
			_, err := strconv.ParseFloat(s, 64)
			return err
		},
	}).Run()
	if err != nil {
		return profile.Skill{}, err
	}

	_, category, err := (&promptui.Select{
		Label: "Category",
		Items: profile.Categories(),
	}).Run()
	if err != nil {
		return profile.Skill{}, err
	}

	parsed, _ := strconv.ParseFloat(confidence, 64)

	return profile.Skill{Name: name, Confidence: parsed, Category: category}, nil
}

func printAnalysis(resume *profile.ResumeData, role string) {
	gaps := matching.ComputeGaps(resume.TopSkills, matching.RequirementsFor(role))
	stats := matching.ComputeStatistics(gaps)

	fmt.Printf("\nSkill gap analysis for %s\n\n", role)

	for _, gap := range gaps {
		marker := " "
		if gap.Status == matching.StatusMatched {
			marker = "x"
		}
		fmt.Printf("  [%s] %-25s %-22s %s\n", marker, gap.Skill, gap.Category, gap.Importance)
	}

	fmt.Printf("\n  overall match: %d%%  required match: %d%%  (%d/%d matched)\n\n",
		stats.OverallMatchPercent, stats.RequiredMatchPercent, stats.Matched, stats.Total)

	for i, advice := range recommend.Recommend(resume.YearsOfExperience, resume.TopSkills, role) {
		fmt.Printf("  %d. %s\n", i+1, advice)
	}
	fmt.Println()
}

func printSummary(resume *profile.ResumeData, role string) {
	summary := profile.Summarize(resume.Name, resume.YearsOfExperience, resume.TopSkills)
	stats := matching.ComputeStatistics(matching.ComputeGaps(resume.TopSkills, matching.RequirementsFor(role)))

	fmt.Printf("\n  %s — %s (%d years)\n", summary.Name, summary.ExperienceLevel, summary.YearsOfExperience)
	if summary.TopSkill != nil {
		fmt.Printf("  strongest skill: %s (%.2f)\n", summary.TopSkill.Name, summary.TopSkill.Confidence)
	}
	fmt.Printf("  average confidence: %.2f\n", summary.AvgConfidence)
	for category, count := range summary.CategoryCounts {
		fmt.Printf("  %s: %d\n", category, count)
	}
	fmt.Printf("  match for %s: %d%%\n\n", role, stats.OverallMatchPercent)
}
