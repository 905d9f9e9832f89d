package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/secmon-lab/shipwright/pkg/domain/model"
)

var (
	stepOK      = color.New(color.FgGreen, color.Bold)
	stepSkip    = color.New(color.FgYellow, color.Bold)
	labelColor  = color.New(color.FgHiCyan)
	valueColor  = color.New(color.FgHiWhite)
	warnColor   = color.New(color.FgYellow)
	actionColor = color.New(color.FgGreen)
)

// stepPrinter renders each completed step with the sequence progress. The
// percentage is completed/total only; it never feeds back into the flows.
func stepPrinter() model.StepNotifyFn {
	return func(step model.ResponseStep, completed, total int) {
		mark := stepOK.Sprint("✔")
		if step.Icon == model.IconSkipped {
			mark = stepSkip.Sprint("-")
		}

		line := fmt.Sprintf("%s [%3d%%] %s", mark, completed*100/total, step.Message)
		if step.SecondaryMessage != "" {
			line += fmt.Sprintf(" (%s)", step.SecondaryMessage)
		}
		fmt.Println(line)

		if step.Link != "" {
			fmt.Printf("          %s\n", step.Link)
		}
	}
}

func printField(label, value string) {
	fmt.Printf("%s %s\n", labelColor.Sprintf("%-16s", label+":"), valueColor.Sprint(value))
}

func printStatus(status *model.ReleaseStatus) {
	printField("Project", status.Project.String())
	printField("Strategy", string(status.Project.VersioningStrategy))
	printField("Default branch", status.DefaultBranch)
	printField("State", string(status.State))

	if status.LatestRelease != nil {
		kind := "release"
		if status.LatestRelease.Prerelease {
			kind = "prerelease"
		}
		printField("Latest release", fmt.Sprintf("%s (%s)", status.LatestRelease.TagName, kind))
		if !status.LatestTagDate.IsZero() {
			printField("Tagged at", status.LatestTagDate.Format("2006-01-02 15:04:05 MST"))
		}
	}
	if status.ReleaseBranch != nil {
		printField("Release branch", fmt.Sprintf("%s @ %s", status.ReleaseBranch.Name, status.ReleaseBranch.HeadSHA.Short()))
	}
	if status.NextRcTag != "" {
		printField("Next candidate", status.NextRcTag)
	}

	if status.Warning != "" {
		fmt.Printf("\n%s %s\n", warnColor.Sprint("WARNING:"), status.Warning)
	}

	if len(status.Actions) > 0 {
		fmt.Println()
		for _, action := range status.Actions {
			fmt.Printf("  %s\n", actionColor.Sprint(string(action)))
		}
	}
}

func printCommits(commits []*model.Commit) {
	for _, c := range commits {
		subject := c.Message
		for i := 0; i < len(subject); i++ {
			if subject[i] == '\n' {
				subject = subject[:i]
				break
			}
		}
		fmt.Printf("%s  %s  %s (%s)\n",
			valueColor.Sprint(c.SHA.Short()),
			c.AuthorDate.Format("2006-01-02"),
			subject,
			c.Author,
		)
	}
}

func printRepos(repos []*model.Repository) {
	for _, r := range repos {
		note := ""
		if r.Archived {
			note = " (archived)"
		}
		fmt.Printf("%s/%s  default:%s%s\n", r.Owner, r.Name, r.DefaultBranch, note)
	}
}
