package domain

// WelcomeNotes returns the starter notes for a fresh account, newest first.
func WelcomeNotes() []NoteInput {
	return []NoteInput{
		{
			Title:   "Welcome to MindNotes!",
			Content: "This is your first note. You can edit or delete it, or create new notes. Try out the AI summarization feature!",
			Summary: strPtr("Welcome note introducing basic app features."),
			Color:   Purple,
		},
		{
			Title: "Meeting Notes - Project Kickoff",
			Content: "Project kickoff meeting with the team.\n\n" +
				"**Attendees**: John, Sarah, Mike, Lisa\n\n" +
				"**Key Points**:\n- Project timeline: 6 weeks\n- Main deliverables: Dashboard, User management, Reporting\n" +
				"- Weekly sync meetings every Monday at 10am\n- Budget approved for additional resources\n\n" +
				"**Action Items**:\n- John to set up project repository\n- Sarah to create initial wireframes\n" +
				"- Mike to prepare technical requirements\n- Lisa to coordinate with the client",
			Summary: strPtr("Project kickoff meeting discussing timeline, deliverables, and action items with team members."),
			Color:   Blue,
		},
		{
			Title: "Ideas for Weekend Trip",
			Content: "# Weekend Trip Ideas\n\n## Destinations\n- Mountain cabin\n- Beach resort\n- City exploration\n\n" +
				"## Activities\n- Hiking\n- Swimming\n- Photography\n- Local cuisine tasting\n\n" +
				"## Packing List\n- Clothes for 3 days\n- Camera\n- Hiking boots\n- Swimwear\n- Sunscreen\n- First aid kit",
			Summary: strPtr("Planning weekend trip with destination options, activities, and packing list."),
			Color:   Green,
		},
	}
}

func strPtr(s string) *string {
	return &s
}
