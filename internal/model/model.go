package model

import "time"

// Repo is a public GitHub repository as returned by the repos listing API.
type Repo struct {
	Name        string     // repository name
	FullName    string     // owner/name
	Description string     // short description, may be empty
	URL         string     // html_url
	Fork        bool       // true for forks
	Archived    bool       // true for archived repos
	PushedAt    *time.Time // nullable (empty repos have none)
	Stars       int        // stargazers_count
}

// RepoDoc pairs a repository with its README text. Repos without a README
// are not turned into docs.
type RepoDoc struct {
	Repo   Repo
	Readme string
}

// JobPosting is the structured form of a scraped job description,
// extracted by the LLM from raw page text.
type JobPosting struct {
	Role        string   `json:"role"`
	Experience  string   `json:"experience"`
	Skills      []string `json:"skills"`
	Description string   `json:"description"`
}

// Candidate holds the applicant details supplied on the command line.
type Candidate struct {
	Name         string
	Organization string
	LinkedInURL  string
	PortfolioURL string
}
