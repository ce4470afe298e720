// Package content is the portfolio copy shared by the web pages and the
// terminal preview.
package content

const AboutMe = `I love building software that’s both useful and fun, and I’m always curious about how things work behind the scenes.
Most of my projects start with a simple idea and turn into a chance to learn something new, whether it’s exploring a
different language, experimenting with tools, or solving tricky problems.
When I’m not coding, you’ll usually find me training Muay Thai, shooting pool with friends,
or chasing down a new challenge outside the screen.`

// Tagline is typed out in the hero once loading completes.
const Tagline = "Software developer building tools for the terminal and the web"

type Project struct {
	ID          string
	Title       string
	Description string
	Tags        []string
}

var Projects = []Project{
	{
		ID:    "project-mail",
		Title: "Terminal Mail",
		Description: `A terminal-based email client built in Go with fuzzyfinder capabilities
using the Charmbracelet TUI framework and go-imap.`,
		Tags: []string{"Go", "Bubble Tea", "IMAP"},
	},
	{
		ID:    "project-music",
		Title: "Terminal Music",
		Description: `A terminal-based music streaming application built in Go with an elegant TUI
interface, leveraging yt-dlp and mpv for seamless YouTube Music playback directly from the command line.`,
		Tags: []string{"Go", "TUI", "mpv"},
	},
	{
		ID:    "project-games",
		Title: "Game Recommender",
		Description: `A machine learning-powered web application that uses TF-IDF vectorization and cosine
similarity to recommend games based on content analysis, featuring interactive data visualizations and
real-time filtering by user reviews and ratings.`,
		Tags: []string{"Python", "scikit-learn", "TF-IDF"},
	},
	{
		ID:    "project-portfolio",
		Title: "Portfolio",
		Description: `A modern, responsive portfolio website built with Go, Gin framework, and HTMX for
dynamic interactions, styled with Tailwind CSS and enhanced with Alpine.js for seamless client-side
interactivity without traditional JavaScript frameworks.`,
		Tags: []string{"Go", "Gin", "HTMX"},
	},
}

// Entry is one job or qualification on the timeline.
type Entry struct {
	Title        string
	Organization string
	StartDate    string
	EndDate      string
	LogoPath     string
	BulletPoints []string
}

var Work = []Entry{
	{
		Title:        "Presentation Expert",
		Organization: "Target",
		StartDate:    "Aug 2023",
		EndDate:      "Present",
		LogoPath:     "images/TargetLogo.jpg",
		BulletPoints: []string{
			"Executed over 300 merchandising transitions on tight timelines by organizing team workflows and adapting quickly to changing priorities",
			"Boosted operational efficiency by managing backroom inventory processes and streamlining communication between floor and logistics teams",
			"Enhanced pricing and signage accuracy across departments by standardizing daily checks and collaborating cross-functionally",
		},
	},
	{
		Title:        "Manager",
		Organization: "Jasons Catered Events",
		StartDate:    "Aug 2016",
		EndDate:      "Present",
		LogoPath:     "images/jasonsCateringLogo.png",
		BulletPoints: []string{
			"Improved client satisfaction by coordinating customized menus and ensuring all dietary requirements were accurately met",
			"Supported event technology by troubleshooting AV equipment and managing digital order tracking systems, reducing technical delays and improving communication",
			"Maintained supply inventory and coordinated timely delivery between venues, optimizing resource allocation and minimizing downtime.",
		},
	},
}

var Education = []Entry{
	{
		Title:        "Bachelor of Computer Science",
		Organization: "Western Governors University",
		StartDate:    "Sept 2019",
		EndDate:      "May 2023",
		LogoPath:     "images/WGU-logo.png",
		BulletPoints: []string{
			"Graduated Magna Cum Laude with 3.8 GPA",
			"Relevant coursework: Data Structures, Algorithms, Web Development",
			"Senior project: Machine Learning recommendation system",
		},
	},
	{
		Title:        "Project Management",
		Organization: "Comptia",
		StartDate:    "July 2022",
		EndDate:      "Present",
		LogoPath:     "images/comptiaCert.png",
		BulletPoints: []string{
			"Certified in agile project management methodology",
			"Verification code: SRRRPGBSWBRQCCDJ",
		},
	},
}

// Skill is a labelled bar filled to Level percent.
type Skill struct {
	Name  string
	Level int
}

var Skills = []Skill{
	{Name: "Go", Level: 90},
	{Name: "Python", Level: 80},
	{Name: "JavaScript", Level: 70},
	{Name: "SQL", Level: 75},
}

// Stat is an achievement counter such as "4+ projects".
type Stat struct {
	Label  string
	Target int
}

var Stats = []Stat{
	{Label: "Projects", Target: len(Projects)},
	{Label: "Years working", Target: 9},
	{Label: "Transitions run", Target: 300},
}

// Section is a top-level page section, in page order.
type Section struct {
	ID    string
	Title string
}

var Sections = []Section{
	{ID: "hero", Title: "Home"},
	{ID: "about", Title: "About"},
	{ID: "projects", Title: "Projects"},
	{ID: "experience", Title: "Experience"},
	{ID: "education", Title: "Education"},
	{ID: "contact", Title: "Contact"},
}

// NavLink is an anchor in the navigation bar.
type NavLink struct {
	Href  string
	Label string
}

// NavLinks returns one link per section.
func NavLinks() []NavLink {
	links := make([]NavLink, len(Sections))
	for i, s := range Sections {
		links[i] = NavLink{Href: "#" + s.ID, Label: s.Title}
	}
	return links
}
