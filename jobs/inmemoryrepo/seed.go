package inmemoryrepo

import "github.com/jobatlas/jobatlas/jobs"

// Seed catalog matching the SQL seed migration.
var seedCategories = []jobs.Category{
	{
		ID:   "cat-1",
		Code: "1",
		Name: jobs.Translations{EN: "Managers", FR: "Directeurs et cadres", PT: "Diretores e gerentes"},
		Description: jobs.Translations{
			EN: "Plan and coordinate organizational activities",
			FR: "Planifier et coordonner les activités organisationnelles",
			PT: "Planejar e coordenar atividades organizacionais",
		},
	},
	{
		ID:   "cat-2",
		Code: "2",
		Name: jobs.Translations{EN: "Professionals", FR: "Professions intellectuelles", PT: "Profissionais"},
		Description: jobs.Translations{
			EN: "Apply scientific and technical knowledge",
			FR: "Appliquer des connaissances scientifiques et techniques",
			PT: "Aplicar conhecimentos científicos e técnicos",
		},
	},
	{
		ID:   "cat-5",
		Code: "5",
		Name: jobs.Translations{EN: "Service Workers", FR: "Personnel des services", PT: "Trabalhadores de serviços"},
		Description: jobs.Translations{
			EN: "Provide services and sell goods",
			FR: "Fournir des services et vendre des biens",
			PT: "Fornecer serviços e vender mercadorias",
		},
	},
	{
		ID:   "cat-6",
		Code: "6",
		Name: jobs.Translations{EN: "Agricultural Workers", FR: "Agriculteurs", PT: "Agricultores"},
		Description: jobs.Translations{
			EN: "Grow crops and raise livestock",
			FR: "Cultiver et élever du bétail",
			PT: "Cultivar e criar gado",
		},
	},
	{
		ID:   "cat-7",
		Code: "7",
		Name: jobs.Translations{EN: "Craft Workers", FR: "Artisans", PT: "Artesãos"},
		Description: jobs.Translations{
			EN: "Construct and repair using specialized skills",
			FR: "Construire et réparer avec des compétences spécialisées",
			PT: "Construir e reparar com habilidades especializadas",
		},
	},
}

var seedJobs = []jobs.Job{
	{
		ID: "job-1111", Code: "1111", CategoryCode: "1",
		Title: jobs.Translations{EN: "Chief Executive", FR: "Directeur général", PT: "Diretor executivo"},
	},
	{
		ID: "job-2512", Code: "2512", CategoryCode: "2",
		Title:      jobs.Translations{EN: "Software Developer", FR: "Développeur logiciel", PT: "Desenvolvedor de software"},
		IsEmerging: true,
	},
	{
		ID: "job-5120", Code: "5120", CategoryCode: "5",
		Title:      jobs.Translations{EN: "Street Vendor", FR: "Vendeur ambulant", PT: "Vendedor ambulante"},
		IsInformal: true,
	},
	{
		ID: "job-6111", Code: "6111", CategoryCode: "6",
		Title:      jobs.Translations{EN: "Field Crop Farmer", FR: "Agriculteur", PT: "Agricultor"},
		IsInformal: true, IsAgri: true,
	},
	{
		ID: "job-7115", Code: "7115", CategoryCode: "7",
		Title:      jobs.Translations{EN: "Carpenter", FR: "Charpentier", PT: "Carpinteiro"},
		IsInformal: true,
	},
}
