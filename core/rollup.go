package core

import (
	"sort"

	"github.com/huangsam/orgpulse/schema"
)

// TopContributorLimit caps the contributor rollup.
const TopContributorLimit = 20

// CalcLanguages counts primary languages over the active subset, sorted by
// count descending then name for a stable presentation order.
func CalcLanguages(repos []schema.RawRepoRecord) []schema.LanguageCount {
	counts := make(map[string]int)
	for _, r := range activeRepos(repos) {
		if r.Language != nil && *r.Language != "" {
			counts[*r.Language]++
		}
	}

	languages := make([]schema.LanguageCount, 0, len(counts))
	for name, count := range counts {
		languages = append(languages, schema.LanguageCount{Name: name, Count: count})
	}
	sort.Slice(languages, func(i, j int) bool {
		if languages[i].Count != languages[j].Count {
			return languages[i].Count > languages[j].Count
		}
		return languages[i].Name < languages[j].Name
	})
	return languages
}

// CalcContributors merges each repository's top author counts over the
// active subset and keeps the heaviest committers, sorted by total commits
// descending then login.
func CalcContributors(repos []schema.RawRepoRecord, limit int) []schema.ContributorStat {
	commits := make(map[string]int)
	repoCounts := make(map[string]int)
	for _, r := range activeRepos(repos) {
		for _, author := range r.Commits.Top {
			commits[author.Login] += author.Commits
			repoCounts[author.Login]++
		}
	}

	contributors := make([]schema.ContributorStat, 0, len(commits))
	for login, total := range commits {
		contributors = append(contributors, schema.ContributorStat{
			Login:     login,
			Commits:   total,
			RepoCount: repoCounts[login],
		})
	}
	sort.Slice(contributors, func(i, j int) bool {
		if contributors[i].Commits != contributors[j].Commits {
			return contributors[i].Commits > contributors[j].Commits
		}
		return contributors[i].Login < contributors[j].Login
	})
	if limit > 0 && len(contributors) > limit {
		contributors = contributors[:limit]
	}
	return contributors
}
