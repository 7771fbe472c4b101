// Package content holds the static text and links shown on the site.
package content

import "image/color"

// Owner details.
const (
	OwnerName  = "Sayan Raut"
	OwnerEmail = "sayanraut2005@gmail.com"
)

// Section anchors.
const (
	AnchorHome     = "home"
	AnchorProjects = "projects"
	AnchorAbout    = "about"
	AnchorContact  = "contact"
)

// Planet is one orbit carousel item. Clicking the focused planet scrolls to
// the section named by ID.
type Planet struct {
	ID          string
	Name        string
	Description string
	Color       color.RGBA
}

// Project is one entry in the works grid.
type Project struct {
	Title    string
	Category string
	Link     string
}

// Expertise is one card in the about section.
type Expertise struct {
	Title       string
	Description string
}

// Link is a named external URL.
type Link struct {
	Name string
	URL  string
}

// Planets in carousel order.
var Planets = []Planet{
	{ID: AnchorProjects, Name: "Projects", Description: "Explore my Github projects", Color: color.RGBA{0x22, 0xc5, 0x5e, 0xff}},
	{ID: AnchorAbout, Name: "About", Description: "Know about me", Color: color.RGBA{0x3b, 0x82, 0xf6, 0xff}},
	{ID: AnchorContact, Name: "Contact", Description: "Let's connect", Color: color.RGBA{0xf5, 0x9e, 0x0b, 0xff}},
}

// Projects in display order.
var Projects = []Project{
	{"Infosys Springboard", "Full Stack Internship", "https://github.com/SayanRaut/Infosys-Springboard-Projects"},
	{"Reagen AI", "Artificial Intelligence", "https://github.com/SayanRaut/Reagen-AI"},
	{"FRA Samanvay", "Geospatial Data", "https://github.com/SayanRaut/FRA_Samanvay"},
	{"SCRCPY by SR", "Utility Tool", "https://github.com/SayanRaut/SCRCPY-by-SR"},
}

// ExpertiseAreas in display order.
var ExpertiseAreas = []Expertise{
	{"Agentic AI", "Building autonomous agents capable of reasoning, planning, and executing complex tasks. Leveraging LLMs to create intelligent, self-correcting workflows."},
	{"Machine Learning", "Developing predictive models and data-driven solutions. Expertise in PyTorch and TensorFlow for computer vision and NLP applications."},
	{"Frontend Architecture", "Crafting scalable, performant, and accessible user interfaces. Focusing on micro-frontends, component reusability, and advanced state management patterns."},
	{"Backend Systems", "Architecting robust APIs and distributed systems. Designing efficient database schemas and deploying containerized microservices on cloud infrastructure."},
	{"UI/UX Design", "Bridging engineering and design. Creating high-fidelity prototypes and fluid interactions that ensure the final product matches the creative vision."},
}

// TechStack is the marquee content.
var TechStack = []Link{
	{"React", "https://react.dev"},
	{"TypeScript", "https://www.typescriptlang.org"},
	{"Next.js", "https://nextjs.org"},
	{"Tailwind", "https://tailwindcss.com"},
	{"Node.js", "https://nodejs.org"},
	{"Python", "https://www.python.org"},
	{"Docker", "https://www.docker.com"},
	{"Three.js", "https://threejs.org"},
	{"Figma", "https://figma.com"},
	{"Git", "https://git-scm.com"},
	{"MongoDB", "https://www.mongodb.com"},
	{"PostgreSQL", "https://www.postgresql.org"},
}

// Socials shown under the contact form.
var Socials = []Link{
	{"Instagram", "https://www.instagram.com/__sayan_raut"},
	{"LinkedIn", "https://www.linkedin.com/in/sayanraut36/"},
	{"GitHub", "https://github.com/SayanRaut"},
}

// Anchors returns the planet IDs in carousel order.
func Anchors() []string {
	out := make([]string, len(Planets))
	for i, p := range Planets {
		out[i] = p.ID
	}
	return out
}
