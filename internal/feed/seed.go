package feed

// SeedItems returns the curated launch content for the feed.
// The first few entries form the initial feed; the full set doubles as
// the candidate pool that recommendation titles are resolved against.
func SeedItems() []Item {
	return []Item{
		{
			ID:        "paper-1",
			Kind:      KindPaper,
			Title:     "GLP-1 Agonists in Early-Stage Type 2 Diabetes",
			Summary:   "A 52-week randomized trial of semaglutide against standard metformin therapy in newly diagnosed adults.",
			SourceURL: "https://clinicaltrials.gov/study/NCT05112233",
			ImageURL:  "https://images.medlens.dev/paper-1.jpg",
			Paper: &PaperDetails{
				PrincipalInvestigator: "Dr. Elena Vasquez",
				PublishedDate:         "2024-11-02",
				Status:                "Recruiting",
				Phase:                 "Phase 3",
				Sponsor:               "Novo Nordisk",
			},
		},
		{
			ID:        "paper-2",
			Kind:      KindPaper,
			Title:     "CAR-T Therapy for Relapsed B-Cell Lymphoma",
			Summary:   "Dose-escalation study of a next-generation anti-CD19 CAR-T construct with a safety switch.",
			SourceURL: "https://clinicaltrials.gov/study/NCT05224411",
			ImageURL:  "https://images.medlens.dev/paper-2.jpg",
			Paper: &PaperDetails{
				PrincipalInvestigator: "Dr. Marcus Okafor",
				PublishedDate:         "2024-09-18",
				Status:                "Recruiting",
				Phase:                 "Phase 1",
				Sponsor:               "MD Anderson Cancer Center",
			},
		},
		{
			ID:        "paper-3",
			Kind:      KindPaper,
			Title:     "Psilocybin-Assisted Therapy for Treatment-Resistant Depression",
			Summary:   "Double-blind comparison of a single 25mg psilocybin dose with an active placebo under therapist supervision.",
			SourceURL: "https://clinicaltrials.gov/study/NCT05335522",
			ImageURL:  "https://images.medlens.dev/paper-3.jpg",
			Paper: &PaperDetails{
				PrincipalInvestigator: "Dr. Sarah Lindqvist",
				PublishedDate:         "2024-08-30",
				Status:                "Completed",
				Phase:                 "Phase 2",
				Sponsor:               "COMPASS Pathways",
			},
		},
		{
			ID:        "paper-4",
			Kind:      KindPaper,
			Title:     "Lecanemab Long-Term Extension in Early Alzheimer's Disease",
			Summary:   "Open-label extension tracking amyloid clearance and cognitive decline over 36 months.",
			SourceURL: "https://clinicaltrials.gov/study/NCT05446633",
			ImageURL:  "https://images.medlens.dev/paper-4.jpg",
			Paper: &PaperDetails{
				PrincipalInvestigator: "Dr. James Whitfield",
				PublishedDate:         "2024-10-12",
				Status:                "Recruiting",
				Phase:                 "Phase 4",
				Sponsor:               "Eisai",
			},
		},
		{
			ID:        "paper-5",
			Kind:      KindPaper,
			Title:     "mRNA Vaccine Candidates Against Pan-Influenza Strains",
			Summary:   "First-in-human trial of a multivalent mRNA vaccine coding for conserved hemagglutinin stalk epitopes.",
			SourceURL: "https://clinicaltrials.gov/study/NCT05557744",
			ImageURL:  "https://images.medlens.dev/paper-5.jpg",
			Paper: &PaperDetails{
				PrincipalInvestigator: "Dr. Priya Raghavan",
				PublishedDate:         "2024-12-01",
				Status:                "Recruiting",
				Phase:                 "Phase 1",
				Sponsor:               "Moderna",
			},
		},
		{
			ID:        "paper-6",
			Kind:      KindPaper,
			Title:     "Tirzepatide for Obstructive Sleep Apnea in Obesity",
			Summary:   "Randomized trial measuring apnea-hypopnea index reduction alongside weight loss over 48 weeks.",
			SourceURL: "https://clinicaltrials.gov/study/NCT05668855",
			ImageURL:  "https://images.medlens.dev/paper-6.jpg",
			Paper: &PaperDetails{
				PrincipalInvestigator: "Dr. Henrik Moller",
				PublishedDate:         "2024-07-22",
				Status:                "Completed",
				Phase:                 "Phase 3",
				Sponsor:               "Eli Lilly",
			},
		},
		{
			ID:        "paper-7",
			Kind:      KindPaper,
			Title:     "Gene Therapy for Sickle Cell Disease via CRISPR Base Editing",
			Summary:   "Single-arm study of autologous base-edited hematopoietic stem cells restoring fetal hemoglobin expression.",
			SourceURL: "https://clinicaltrials.gov/study/NCT05779966",
			ImageURL:  "https://images.medlens.dev/paper-7.jpg",
			Paper: &PaperDetails{
				PrincipalInvestigator: "Dr. Amara Diallo",
				PublishedDate:         "2024-06-14",
				Status:                "Recruiting",
				Phase:                 "Phase 2",
				Sponsor:               "Vertex Pharmaceuticals",
			},
		},
		{
			ID:        "paper-8",
			Kind:      KindPaper,
			Title:     "Ketamine Maintenance Dosing After Acute Depression Response",
			Summary:   "Pragmatic trial comparing biweekly esketamine maintenance with taper-and-observe after initial remission.",
			SourceURL: "https://clinicaltrials.gov/study/NCT05881077",
			ImageURL:  "https://images.medlens.dev/paper-8.jpg",
			Paper: &PaperDetails{
				PrincipalInvestigator: "Dr. Rosa Camacho",
				PublishedDate:         "2024-05-09",
				Status:                "Terminated",
				Phase:                 "Phase 2",
				Sponsor:               "Janssen",
			},
		},
		{
			ID:       "video-1",
			Kind:     KindVideo,
			Title:    "Explained: How GLP-1 Drugs Change Diabetes Care",
			Summary:  "A three-minute animated walkthrough of the semaglutide early-intervention trial.",
			ImageURL: "https://images.medlens.dev/video-1.jpg",
			Video: &VideoDetails{
				PaperID:      "paper-1",
				VideoURL:     "https://videos.medlens.dev/video-1.mp4",
				ThumbnailURL: "https://images.medlens.dev/video-1-thumb.jpg",
			},
		},
		{
			ID:       "video-2",
			Kind:     KindVideo,
			Title:    "CAR-T in Plain Language",
			Summary:  "What it means to reprogram your own immune cells, and why a safety switch matters.",
			ImageURL: "https://images.medlens.dev/video-2.jpg",
			Video: &VideoDetails{
				PaperID:      "paper-2",
				VideoURL:     "https://videos.medlens.dev/video-2.mp4",
				ThumbnailURL: "https://images.medlens.dev/video-2-thumb.jpg",
			},
		},
		{
			ID:       "video-3",
			Kind:     KindVideo,
			Title:    "Inside the Psilocybin Depression Trial",
			Summary:  "The trial design behind the headlines: blinding, dosing sessions, and what the data shows.",
			ImageURL: "https://images.medlens.dev/video-3.jpg",
			Video: &VideoDetails{
				PaperID:      "paper-3",
				VideoURL:     "https://videos.medlens.dev/video-3.mp4",
				ThumbnailURL: "https://images.medlens.dev/video-3-thumb.jpg",
			},
		},
		{
			ID:       "video-4",
			Kind:     KindVideo,
			Title:    "CRISPR and Sickle Cell: A Patient's Journey",
			Summary:  "Following one participant through apheresis, conditioning, and infusion of edited cells.",
			ImageURL: "https://images.medlens.dev/video-4.jpg",
			Video: &VideoDetails{
				PaperID:      "paper-7",
				VideoURL:     "https://videos.medlens.dev/video-4.mp4",
				ThumbnailURL: "https://images.medlens.dev/video-4-thumb.jpg",
			},
		},
	}
}

// InitialFeed returns the subset of seed items the feed starts with.
// The remainder of the pool only surfaces through recommendations
// or review-queue approval.
func InitialFeed() []Item {
	all := SeedItems()
	initial := make([]Item, 0, 6)
	for _, item := range all {
		switch item.ID {
		case "paper-1", "paper-2", "paper-3", "video-1", "video-2":
			initial = append(initial, item)
		}
	}
	return initial
}
