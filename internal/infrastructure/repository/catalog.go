package repository

import "trainingcentre/internal/domain"

// CourseCatalog serves the fixed course list. The data is compiled in;
// there is no insert, update or delete path.
type CourseCatalog struct {
	courses []domain.Course
}

func NewCourseCatalog() *CourseCatalog {
	return &CourseCatalog{courses: courses}
}

// All returns the catalog in declaration order. Callers get copies so the
// fixed list stays fixed.
func (c *CourseCatalog) All() []domain.Course {
	out := make([]domain.Course, len(c.courses))
	for i := range c.courses {
		out[i] = copyCourse(&c.courses[i])
	}
	return out
}

// FindByID does a linear scan over the fixed list. The returned record is
// a copy for the same reason.
func (c *CourseCatalog) FindByID(id string) (*domain.Course, bool) {
	for i := range c.courses {
		if c.courses[i].ID == id {
			course := copyCourse(&c.courses[i])
			return &course, true
		}
	}
	return nil, false
}

func copyCourse(course *domain.Course) domain.Course {
	copied := *course
	copied.Modules = append([]string(nil), course.Modules...)
	return copied
}

var courses = []domain.Course{
	{
		ID:          "pbi-sql",
		Title:       "Power BI & SQL Excellence",
		Price:       4999,
		Free:        false,
		Description: "Full-stack Data Intelligence mastery.",
		Details:     "Learn to build production-grade dashboards and manage complex relational databases with SQL. This course covers everything from basic queries to advanced DAX patterns.",
		Modules:     []string{"SQL Advanced Joins", "Power BI DAX Patterns", "Visual Storytelling", "Performance Tuning"},
		Cert:        "Microsoft PL-300",
		Icon:        "Database",
	},
	{
		ID:          "ms-fabric",
		Title:       "Microsoft Fabric Elite",
		Price:       5999,
		Free:        false,
		Description: "The future of unified analytics.",
		Details:     "Master the all-in-one analytics solution from Microsoft. Learn OneLake, Data Factory, Synapse, and Real-time Analytics in a single cohesive platform.",
		Modules:     []string{"OneLake Security", "Fabric Data Factory", "Real-time Analytics", "Lakehouse Architecture"},
		Cert:        "Microsoft DP-600",
		Icon:        "Network",
	},
	{
		ID:          "agentic-ai",
		Title:       "Agentic AI Swarms",
		Price:       0,
		Free:        true,
		Description: "Building autonomous AI agents.",
		Details:     "Dive into the cutting-edge world of autonomous AI. Learn to build multi-agent systems that can plan, reason, and execute tasks independently.",
		Modules:     []string{"LLM Orchestration", "Agentic RAG", "Multi-Agent Systems", "AutoGPT Patterns"},
		Cert:        "MA Global AI Cert",
		Icon:        "Bot",
	},
	{
		ID:          "azure-de",
		Title:       "Azure Data Engineering",
		Price:       5999,
		Free:        false,
		Description: "Scale data pipelines on Cloud.",
		Details:     "Become an expert in cloud-based data movement and transformation. Learn to use Azure's most powerful data tools to build scalable pipelines.",
		Modules:     []string{"Azure Databricks", "Data Factory ETL", "Synapse Analytics", "ADLS Gen2 Patterns"},
		Cert:        "Microsoft DP-203",
		Icon:        "Cloud",
	},
	{
		ID:          "rpa-pro",
		Title:       "RPA Automation Pro",
		Price:       4999,
		Free:        false,
		Description: "Master enterprise automation.",
		Details:     "Learn to automate repetitive business processes using enterprise-grade RPA tools. Increase efficiency and reduce errors in any organization.",
		Modules:     []string{"UiPath Studio", "Blue Prism", "Bot Life Cycle", "Queue Management"},
		Cert:        "Global RPA Cert",
		Icon:        "Cpu",
	},
	{
		ID:          "math-research",
		Title:       "Mathematics & Research",
		Price:       2999,
		Free:        false,
		Description: "Foundational logic and stats.",
		Details:     "The bedrock of data science and AI. Deep dive into the mathematical principles that power modern algorithms and statistical models.",
		Modules:     []string{"Linear Algebra", "Probability Theory", "Statistical Inference", "Optimization"},
		Cert:        "Academic Excellence Cert",
		Icon:        "Calculator",
	},
}
