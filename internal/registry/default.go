package registry

// defaultSpec 内置词表。内容是可替换的纯数据：换一份Spec即可换一套词表，
// 抽取逻辑不感知任何具体条目。
func defaultSpec() *Spec {
	return &Spec{
		Skills:              defaultSkills(),
		Certifications:      defaultCertifications(),
		EducationLevels:     defaultEducationLevels(),
		WorkContext:         defaultWorkContext(),
		EduContext:          defaultEduContext(),
		DateRanges:          defaultDateRanges(),
		NameBlocklist:       defaultNameBlocklist(),
		FilenameNoiseWords:  defaultFilenameNoiseWords(),
		LocationTechTerms:   defaultLocationTechTerms(),
		TechContextWords:    defaultTechContextWords(),
		PhonePatterns:       defaultPhonePatterns(),
		JobTitlePatterns:    defaultJobTitlePatterns(),
		JobContext:          defaultJobContext(),
		GenericTitles:       defaultGenericTitles(),
		CompanyPatterns:     defaultCompanyPatterns(),
		CompanyContext:      defaultCompanyContext(),
		CompanyExcludeWords: defaultCompanyExcludeWords(),
		CertSectionKeywords: defaultCertSectionKeywords(),
		SectionHeaders:      defaultSectionHeaders(),
	}
}

func defaultSkills() []SkillEntry {
	return []SkillEntry{
		{Canonical: "Machine Learning", Patterns: []string{`(?i)\bMachine\s+Learning\b`, `\bML\b`}},
		{Canonical: "Deep Learning", Patterns: []string{`(?i)\bDeep\s+Learning\b`, `\bDL\b`}},
		{Canonical: "Amazon Web Services", Patterns: []string{`(?i)\bAmazon\s+Web\s+Services\b`}},
		{Canonical: "Spring Boot", Patterns: []string{`(?i)\bSpring\s+Boot\b`}},
		{Canonical: "Ruby on Rails", Patterns: []string{`(?i)\bRuby\s+on\s+Rails\b`}},
		{Canonical: "Node.js", Patterns: []string{`(?i)\bNode\.?js\b`, `(?i)\bNode\.js\b`}},
		{Canonical: "JavaScript", Patterns: []string{`(?i)\bJavaScript\b`, `\bJS\b`}},
		{Canonical: "TypeScript", Patterns: []string{`(?i)\bTypeScript\b`, `\bTS\b`}},
		{Canonical: "PostgreSQL", Patterns: []string{`(?i)\bPostgreSQL\b`, `(?i)\bPostgres\b`}},
		{Canonical: "Kubernetes", Patterns: []string{`(?i)\bKubernetes\b`, `(?i)\bK8s\b`}},
		{Canonical: "TensorFlow", Patterns: []string{`(?i)\bTensorFlow\b`}},
		{Canonical: "PyTorch", Patterns: []string{`(?i)\bPyTorch\b`}},
		{Canonical: "Elasticsearch", Patterns: []string{`(?i)\bElasticsearch\b`}},
		{Canonical: "GraphQL", Patterns: []string{`(?i)\bGraphQL\b`}},
		{Canonical: "Terraform", Patterns: []string{`(?i)\bTerraform\b`}},
		{Canonical: "Jenkins", Patterns: []string{`(?i)\bJenkins\b`}},
		{Canonical: "RabbitMQ", Patterns: []string{`(?i)\bRabbitMQ\b`}},
		{Canonical: "MongoDB", Patterns: []string{`(?i)\bMongoDB\b`, `(?i)\bMongo\b`}},
		{Canonical: "Angular", Patterns: []string{`(?i)\bAngular(?:JS)?\b`}},
		{Canonical: "Python", Patterns: []string{`(?i)\bPython\b`, `(?i)\bPythonic\b`}},
		{Canonical: "React", Patterns: []string{`(?i)\bReact(?:\.js)?\b`}},
		{Canonical: "Django", Patterns: []string{`(?i)\bDjango\b`}},
		{Canonical: "Flask", Patterns: []string{`(?i)\bFlask\b`}},
		{Canonical: "FastAPI", Patterns: []string{`(?i)\bFastAPI\b`}},
		{Canonical: "Spring", Patterns: []string{`(?i)\bSpring\b`}},
		{Canonical: "Docker", Patterns: []string{`(?i)\bDocker\b`}},
		{Canonical: "Ansible", Patterns: []string{`(?i)\bAnsible\b`}},
		{Canonical: "Hadoop", Patterns: []string{`(?i)\bHadoop\b`}},
		{Canonical: "Kafka", Patterns: []string{`(?i)\bKafka\b`}},
		{Canonical: "Spark", Patterns: []string{`(?i)\bSpark\b`}},
		{Canonical: "Pandas", Patterns: []string{`(?i)\bPandas\b`}},
		{Canonical: "NumPy", Patterns: []string{`(?i)\bNumPy\b`}},
		{Canonical: "Tableau", Patterns: []string{`(?i)\bTableau\b`}},
		{Canonical: "MySQL", Patterns: []string{`(?i)\bMySQL\b`}},
		{Canonical: "Oracle", Patterns: []string{`(?i)\bOracle\b`}},
		{Canonical: "Redis", Patterns: []string{`(?i)\bRedis\b`}},
		{Canonical: "Linux", Patterns: []string{`(?i)\bLinux\b`}},
		{Canonical: "Git", Patterns: []string{`(?i)\bGit\b`, `(?i)\bGitHub\b`, `(?i)\bGitLab\b`}},
		{Canonical: "Java", Patterns: []string{`(?i)\bJava\b`}},
		{Canonical: "Scala", Patterns: []string{`(?i)\bScala\b`}},
		{Canonical: "Kotlin", Patterns: []string{`(?i)\bKotlin\b`}},
		{Canonical: "Swift", Patterns: []string{`(?i)\bSwift\b`}},
		{Canonical: "Rust", Patterns: []string{`(?i)\bRust\b`}},
		{Canonical: "Go", Patterns: []string{`\bGo\b`, `(?i)\bGolang\b`}},
		{Canonical: "Ruby", Patterns: []string{`(?i)\bRuby\b`}},
		{Canonical: "PHP", Patterns: []string{`(?i)\bPHP\b`}},
		{Canonical: "C++", Patterns: []string{`\bC\+\+`, `(?i)\bCPP\b`}},
		{Canonical: "C#", Patterns: []string{`\bC#`, `(?i)\bCSharp\b`}},
		{Canonical: ".NET", Patterns: []string{`(?i)\.NET\b`, `(?i)\bDotNet\b`}},
		{Canonical: "SQL", Patterns: []string{`(?i)\bSQL\b`}},
		{Canonical: "NoSQL", Patterns: []string{`(?i)\bNoSQL\b`}},
		{Canonical: "AWS", Patterns: []string{`\bAWS\b`}},
		{Canonical: "Azure", Patterns: []string{`(?i)\bAzure\b`}},
		{Canonical: "GCP", Patterns: []string{`\bGCP\b`, `(?i)\bGoogle\s+Cloud\b`}},
		{Canonical: "HTML", Patterns: []string{`(?i)\bHTML5?\b`}},
		{Canonical: "CSS", Patterns: []string{`(?i)\bCSS3?\b`}},
		{Canonical: "Vue", Patterns: []string{`(?i)\bVue(?:\.js)?\b`}},
		{Canonical: "REST", Patterns: []string{`(?i)\bRESTful\b`, `\bREST\b`}},
		{Canonical: "gRPC", Patterns: []string{`(?i)\bgRPC\b`}},
		{Canonical: "CI/CD", Patterns: []string{`(?i)\bCI/CD\b`}},
		{Canonical: "Agile", Patterns: []string{`(?i)\bAgile\b`}},
		{Canonical: "Scrum", Patterns: []string{`(?i)\bScrum\b`}},
	}
}

func defaultCertifications() []CertEntry {
	// 学习平台类条目带禁用上下文：这些词在"熟悉/精通XX"的技能语境里
	// 出现时不算认证
	skillMentionContext := []string{"experience with", "proficient in", "skill in", "knowledge of"}

	return []CertEntry{
		{Canonical: "AWS Certified", Patterns: []string{
			`(?i)\bAWS\s+Certified\b`, `(?i)\bAmazon\s+Web\s+Services\s+Certified\b`,
			`(?i)\bAWS\s+Solutions\s+Architect\b`, `(?i)\bAWS\s+Developer\b`, `(?i)\bAWS\s+SysOps\b`,
			`(?i)\bAWS\s+(?:SAA|CLF|DVA|SOA)\b`,
		}},
		{Canonical: "Azure Certified", Patterns: []string{
			`(?i)\bAzure\s+Certified\b`, `(?i)\bAZ-\d{3}\b`,
			`(?i)\bAzure\s+(?:Fundamentals|Administrator|Architect|Developer|DevOps)\b`,
		}},
		{Canonical: "Google Cloud Certified", Patterns: []string{
			`(?i)\bGCP\s+Certified\b`, `(?i)\bGoogle\s+Cloud\s+(?:Certified|Professional|Associate)\b`,
			`(?i)\bProfessional\s+Cloud\s+(?:Architect|Developer)\b`, `(?i)\bProfessional\s+Data\s+Engineer\b`,
		}},
		{Canonical: "Google Analytics", Patterns: []string{`(?i)\bGoogle\s+Analytics\s+Certified\b`, `(?i)\bGAIQ\b`}},
		{Canonical: "Google Data Analytics", Patterns: []string{`(?i)\bGoogle\s+Data\s+Analytics\b`}},
		{Canonical: "Google IT Support", Patterns: []string{`(?i)\bGoogle\s+IT\s+(?:Support|Certificate)\b`}},
		{Canonical: "Google UX Design", Patterns: []string{`(?i)\bGoogle\s+UX\s+Design\b`}},
		{Canonical: "Google Cybersecurity", Patterns: []string{`(?i)\bGoogle\s+Cybersecurity\b`}},
		{Canonical: "PMP", Patterns: []string{`\bPMP\b`, `(?i)\bProject\s+Management\s+Professional\b`}},
		{Canonical: "PRINCE2", Patterns: []string{`(?i)\bPRINCE2\b`}},
		{Canonical: "CAPM", Patterns: []string{`\bCAPM\b`}},
		{Canonical: "Scrum Master", Patterns: []string{`(?i)\bScrum\s+Master\b`, `\bCSM\b`}},
		{Canonical: "Scrum Product Owner", Patterns: []string{`\bCSPO\b`, `(?i)\bCertified\s+Scrum\s+Product\s+Owner\b`}},
		{Canonical: "SAFe", Patterns: []string{`\bSAFe\b`, `(?i)\bScaled\s+Agile\b`}},
		{Canonical: "ITIL", Patterns: []string{`(?i)\bITIL(?:\s+(?:Foundation|v4))?\b`}},
		{Canonical: "CISSP", Patterns: []string{`\bCISSP\b`, `(?i)\bCertified\s+Information\s+Systems\s+Security\s+Professional\b`}},
		{Canonical: "Security+", Patterns: []string{`(?i)\bSecurity\+`, `(?i)\bSecurity\s+Plus\b`}},
		{Canonical: "CEH", Patterns: []string{`\bCEH\b`, `(?i)\bCertified\s+Ethical\s+Hacker\b`}},
		{Canonical: "CISM", Patterns: []string{`\bCISM\b`}},
		{Canonical: "CISA", Patterns: []string{`\bCISA\b`}},
		{Canonical: "Oracle Certified", Patterns: []string{`(?i)\bOracle\s+Certified\b`, `\bOCA\b`, `\bOCP\b`}},
		{Canonical: "Microsoft Certified", Patterns: []string{`(?i)\bMicrosoft\s+Certified\b`, `\bMCS[ADE]\b`}},
		{Canonical: "Cisco Certified", Patterns: []string{`(?i)\bCisco\s+Certified\b`, `\bCCNA\b`, `\bCCNP\b`, `\bCCIE\b`}},
		{Canonical: "Kubernetes Certified", Patterns: []string{`\bCKAD?\b`, `(?i)\bKubernetes\s+Certified\b`}},
		{Canonical: "Docker Certified", Patterns: []string{`(?i)\bDocker\s+Certified\b`}},
		{Canonical: "Terraform Certified", Patterns: []string{`(?i)\bTerraform\s+(?:Certified|Associate)\b`, `(?i)\bHashicorp\s+Terraform\b`}},
		{Canonical: "Salesforce Certified", Patterns: []string{`(?i)\bSalesforce\s+(?:Certified|Admin|Developer)\b`, `\bSFDC\b`}},
		{Canonical: "Red Hat Certified", Patterns: []string{`\bRHCE\b`, `\bRHCSA\b`, `(?i)\bRed\s+Hat\s+Certified\b`}},
		{Canonical: "CompTIA A+", Patterns: []string{`(?i)\bCompTIA\s+A\+`}},
		{Canonical: "CompTIA Network+", Patterns: []string{`(?i)\b(?:CompTIA\s+)?Network\+`}},
		{Canonical: "IBM Certified", Patterns: []string{`(?i)\bIBM\s+(?:Certified|Professional|Specialist|Associate)\b`}},
		{Canonical: "IBM Data Science", Patterns: []string{`(?i)\bIBM\s+Data\s+(?:Science|Analyst|Engineer)\b`}},
		{Canonical: "IBM AI Engineering", Patterns: []string{`(?i)\bIBM\s+(?:AI\s+Engineering|Machine\s+Learning)\b`}},
		{Canonical: "Tableau Certified", Patterns: []string{`(?i)\bTableau\s+Certified\b`}},
		{Canonical: "Snowflake Certified", Patterns: []string{`(?i)\bSnowflake\s+Certified\b`}},
		{Canonical: "Coursera", Patterns: []string{`(?i)\bCoursera\b`}, ForbiddenContext: skillMentionContext},
		{Canonical: "Udemy", Patterns: []string{`(?i)\bUdemy\b`}, ForbiddenContext: skillMentionContext},
		{Canonical: "edX", Patterns: []string{`(?i)\bedX\b`}, ForbiddenContext: skillMentionContext},
		{Canonical: "LinkedIn Learning", Patterns: []string{`(?i)\bLinkedIn\s+Learning\b`, `(?i)\bLynda\b`}, ForbiddenContext: skillMentionContext},
		{Canonical: "Pluralsight", Patterns: []string{`(?i)\bPluralsight\b`}, ForbiddenContext: skillMentionContext},
		{Canonical: "DataCamp", Patterns: []string{`(?i)\bDataCamp\b`}, ForbiddenContext: skillMentionContext},
		{Canonical: "Udacity", Patterns: []string{`(?i)\bUdacity(?:\s+Nanodegree)?\b`}, ForbiddenContext: skillMentionContext},
		{Canonical: "HackerRank", Patterns: []string{`(?i)\bHackerRank\b`}, ForbiddenContext: skillMentionContext},
		{Canonical: "freeCodeCamp", Patterns: []string{`(?i)\bfreeCodeCamp\b`, `(?i)\bFree\s+Code\s+Camp\b`}, ForbiddenContext: skillMentionContext},
		// Postman 必须与API/Student Expert语境同现，否则大概率只是技能提及
		{Canonical: "Postman", Patterns: []string{`(?i)\bPostman\b`}, RequiredContext: []string{"api", "student expert"}},
		{Canonical: "MongoDB Certified", Patterns: []string{`(?i)\bMongoDB\s+(?:University|Certified)\b`}},
		{Canonical: "Meta Certified", Patterns: []string{`(?i)\bMeta\s+(?:Certified|Front-End|Back-End)\b`, `(?i)\bFacebook\s+Certified\b`}},
		{Canonical: "Python Institute", Patterns: []string{`\bPC[EAP]P\b`, `(?i)\bPython\s+Institute\b`}},
		{Canonical: "Java Certified", Patterns: []string{`\bOCP?JP\b`, `(?i)\bJava\s+SE\s+Programmer\b`}},
		{Canonical: "TOGAF", Patterns: []string{`\bTOGAF\b`}},
		{Canonical: "Six Sigma", Patterns: []string{`(?i)\b(?:Lean\s+)?Six\s+Sigma\b`, `(?i)\b(?:Green|Black)\s+Belt\b`}},
	}
}

func defaultEducationLevels() []EducationEntry {
	// 从高到低排列，单赢家选择依赖这里的顺序
	return []EducationEntry{
		{Level: "PhD", Patterns: []string{
			`(?i)\bph\.?\s*d\.?\b`, `(?i)\bdoctorate\b`, `(?i)\bdoctoral\b`, `(?i)\bdoctor\s+of\s+philosophy\b`,
		}},
		{Level: "Master's", Patterns: []string{
			`(?i)\bmaster'?s?\b`, `(?i)\bmba\b`, `(?i)\bm\.?sc\b`, `(?i)\bm\.\s*s\.\b`, `(?i)\bmeng\b`, `(?i)\bm\.eng\b`,
		}},
		{Level: "Bachelor's", Patterns: []string{
			`(?i)\bbachelor'?s?\b`, `(?i)\bbsc\b`, `(?i)\bbeng\b`, `(?i)\bbtech\b`,
			`(?i)\bb\.\s*s\.\b`, `(?i)\bb\.\s*a\.\b`, `(?i)\bb\.?sc\b`, `(?i)\bb\.eng\b`,
		}},
		{Level: "Associate's", Patterns: []string{
			`(?i)\bassociate'?s?\s+degree\b`, `(?i)\ba\.\s*a\.\b`, `(?i)\ba\.\s*s\.\b`, `(?i)\baas\b`,
		}},
		{Level: "Diploma", Patterns: []string{
			`(?i)\bdiploma\s+(?:in|from)\b`, `(?i)\bdiploma\b`,
		}},
	}
}

func defaultWorkContext() []string {
	return []string{
		"experience", "work", "employment", "position", "role", "job", "career",
		"employed", "worked", "company", "employer", "organization", "corporation",
		"engineer", "developer", "manager", "analyst", "consultant", "specialist",
		"director", "lead", "senior", "junior", "intern", "internship",
		"responsibilities", "achievements", "technologies", "tools",
	}
}

func defaultEduContext() []string {
	return []string{
		"education", "university", "college", "school", "degree", "bachelor", "master",
		"phd", "doctorate", "diploma", "certificate", "graduated", "graduation",
		"student", "studied", "coursework", "gpa", "academic",
		"undergraduate", "graduate", "thesis", "b.sc", "m.sc", "b.eng", "m.eng",
	}
}

func defaultDateRanges() []string {
	const month = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`
	return []string{
		`(?i)(\d{4})\s*[-–—]\s*(\d{4}|Present|Current|Now)`,
		`(?i)(\d{1,2}[/-]\d{4})\s*[-–—]\s*(\d{1,2}[/-]\d{4}|Present|Current|Now)`,
		`(?i)(` + month + `[a-z]*\.?\s+\d{4})\s*[-–—]\s*(` + month + `[a-z]*\.?\s+\d{4}|Present|Current|Now)`,
	}
}

func defaultNameBlocklist() []string {
	return []string{
		"RESUME", "CV", "CURRICULUM VITAE", "CURRICULUM", "VITAE", "CERTIFICATE",
		"APPLICATION", "COVER LETTER", "PHONE", "EMAIL", "ADDRESS", "CONTACT",
		"OBJECTIVE", "SUMMARY", "EXPERIENCE", "EDUCATION", "SKILLS", "PROJECT",
		"PROJECTS", "REFERENCES",
	}
}

func defaultFilenameNoiseWords() []string {
	return []string{
		"resume", "cv", "curriculum", "vitae", "intern", "internship",
		"fresher", "experienced", "updated", "final", "latest", "copy",
	}
}

func defaultLocationTechTerms() []string {
	return []string{
		"Python", "Java", "JavaScript", "TypeScript", "Ruby", "PHP", "Swift", "Kotlin",
		"React", "Angular", "Vue", "Node", "Django", "Flask", "Spring", "Express",
		"SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis", "Docker", "Kubernetes",
		"AWS", "Azure", "GCP", "Git", "GitHub", "Linux", "Windows", "Script", "Code",
	}
}

func defaultTechContextWords() []string {
	return []string{"programming", "language", "framework", "library", "skill", "proficient", "experience with"}
}

func defaultPhonePatterns() []string {
	// 按优先级排列：国际区号在前，裸数字串最后
	return []string{
		`\+\d{1,3}[-.\s]?\(?\d{1,4}\)?[-.\s]?\d{3,4}[-.\s]?\d{3,4}`,
		`\(\d{3}\)[-.\s]?\d{3}[-.\s]?\d{4}`,
		`\d{3}[-.\s]\d{3}[-.\s]\d{4}`,
		`\d{10,11}`,
		`\+\d{1,4}[-\s]?\d{6,14}`,
	}
}

func defaultJobTitlePatterns() []string {
	const qualifier = `(?:Senior|Junior|Lead|Principal|Staff|Associate)`
	const domain = `(?:Software|Data|ML|AI|DevOps|Cloud|Full.?Stack|Front.?end|Back.?end|Mobile|QA|Test|Security|Network|System|Database|Business|Product|Project|Marketing|Sales|HR|Finance|Operations|Research|Design|UX|UI)`
	const role = `(?:Engineer|Developer|Architect|Analyst|Scientist|Manager|Specialist|Consultant|Designer|Director|Coordinator|Administrator|Technician)`
	return []string{
		`(?i)\b` + qualifier + `\s+` + domain + `\s+` + role + `\b`,
		`(?i)\b` + domain + `\s+` + role + `\b`,
		`(?i)\b` + qualifier + `\s+` + role + `\b`,
	}
}

func defaultJobContext() []string {
	return []string{
		"position", "role", "title", "worked as", "served as", "employed as",
		"experience", "employment", "career", "responsibilities", "company",
	}
}

func defaultGenericTitles() []string {
	return []string{"manager", "director", "engineer", "developer", "analyst"}
}

func defaultCompanyPatterns() []string {
	// 公司名按"连续大写开头词"捕获，小写填充词（from/in/...）自然截断
	const capWords = `[A-Z][A-Za-z&.\-]+(?:[ \t]+[A-Z][A-Za-z&.\-]+)*`
	return []string{
		`\bat[ \t]+(` + capWords + `)`,
		`\b(?:[Ww]orked|[Ww]orking|[Ee]mployed)[ \t]+(?:[Aa]t|[Ff]or|[Ww]ith)[ \t]+(` + capWords + `)`,
		`((?:[A-Z][A-Za-z&.\-]+[ \t]+)+(?:Inc|LLC|Corp|Ltd|Technologies|Systems|Solutions|Industries|Pvt|Limited))\b`,
		`(?m)^[ \t]*(` + capWords + `)[ \t]*[|–-][ \t]*(?:Senior|Junior|Lead|Software|Engineer|Developer|Analyst|Manager|Director)`,
	}
}

func defaultCompanyContext() []string {
	return []string{
		"at", "company", "employer", "organization", "corporation", "firm",
		"experience", "employment", "worked", "employed",
	}
}

func defaultCompanyExcludeWords() []string {
	return []string{
		"the", "and", "at", "of", "in", "on", "with", "for", "from", "to",
		"resume", "cv", "curriculum", "vitae", "experience", "education",
		"skills", "projects", "references", "contact", "email", "phone",
	}
}

func defaultCertSectionKeywords() []string {
	return []string{"certification", "certifications", "certificate", "certificates", "certified", "credential", "credentials", "license", "qualification"}
}

func defaultSectionHeaders() []string {
	return []string{"experience", "work experience", "education", "skills", "projects", "summary", "references"}
}
