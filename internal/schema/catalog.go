package schema

// Shared enum choice sets reused across kinds.
var (
	authorTypeChoices = []string{"Sole", "First", "Corresponding", "Other"}
	coAuthorChoices   = []string{"Sole", "Co-Author"}
	scopeChoices      = []string{"Regional", "National", "International"}
	modeChoices       = []string{"Online", "Offline"}
	statusChoices     = []string{"Ongoing", "Completed"}
	levelChoices      = []string{"University", "State", "National", "International"}
	durationChoices   = []string{"Short-Term", "Medium-Term", "Long-Term", "Other"}
	certTypeChoices   = []string{"Elite-Gold", "Elite-Silver", "Passed", "Other"}
)

// catalog enumerates every report kind once, in display order. Faculty
// kinds carry the T prefix, student kinds the S prefix.
func catalog() []KindDescriptor {
	return []KindDescriptor{
		{
			ID: "T1.1", Name: "Research Articles (Journal)", Audience: AudienceFaculty,
			Fields: []FieldDescriptor{
				{Name: "title", Label: "Title", Type: TypeText, Required: true, MaxLen: 255, Filter: true},
				{Name: "author_type", Label: "Author Type", Type: TypeEnum, Choices: authorTypeChoices},
				{Name: "internal_authors", Label: "Internal Authors", Type: TypeLongText},
				{Name: "external_authors", Label: "External Authors", Type: TypeLongText},
				{Name: "journal_name", Label: "Journal Name", Type: TypeText, Required: true, MaxLen: 255, Filter: true},
				{Name: "volume", Label: "Volume", Type: TypeText, MaxLen: 50},
				{Name: "issue", Label: "Issue", Type: TypeText, MaxLen: 50},
				{Name: "page_no", Label: "Page No", Type: TypeText, MaxLen: 50},
				{Name: "publication_month_year", Label: "Month & Year Of Publication", Type: TypeText, MaxLen: 20},
				{Name: "issn_number", Label: "ISSN Number", Type: TypeText, MaxLen: 20},
				{Name: "doi", Label: "DOI", Type: TypeURL},
				{Name: "publisher", Label: "Publisher", Type: TypeText, MaxLen: 200},
				{Name: "indexing_wos", Label: "Indexed In WoS", Type: TypeBool},
				{Name: "indexing_scopus", Label: "Indexed In Scopus", Type: TypeBool},
				{Name: "indexing_ugc", Label: "Indexed In UGC CARE", Type: TypeBool},
				{Name: "indexing_other", Label: "Other Indexing", Type: TypeText, MaxLen: 100},
				{Name: "impact_factor", Label: "Impact Factor", Type: TypeText, MaxLen: 50},
				{Name: "document_link", Label: "Document Link", Type: TypeURL},
				{Name: "google_drive_link", Label: "Google Drive Link", Type: TypeURL},
			},
		},
		{
			ID: "T1.2", Name: "Research Articles (Conference)", Audience: AudienceFaculty,
			Fields: []FieldDescriptor{
				{Name: "title", Label: "Title", Type: TypeText, Required: true, MaxLen: 255, Filter: true},
				{Name: "author_type", Label: "Author Type", Type: TypeEnum, Choices: authorTypeChoices},
				{Name: "internal_authors", Label: "Internal Authors", Type: TypeLongText},
				{Name: "external_authors", Label: "External Authors", Type: TypeLongText},
				{Name: "conference_details", Label: "Conference Details", Type: TypeLongText, Filter: true, Help: "Organization/Institution name, Place, State"},
				{Name: "isbn_issn", Label: "ISBN/ISSN", Type: TypeText, MaxLen: 50},
				{Name: "publisher", Label: "Publisher", Type: TypeText, MaxLen: 200},
				{Name: "page_no", Label: "Page No", Type: TypeText, MaxLen: 50},
				{Name: "publication_month_year", Label: "Month & Year Of Publication", Type: TypeText, MaxLen: 20},
				{Name: "indexing_scopus", Label: "Indexed In Scopus", Type: TypeBool},
				{Name: "indexing_other", Label: "Other Indexing", Type: TypeText, MaxLen: 100},
				{Name: "conference_status", Label: "Conference Status", Type: TypeEnum, Choices: scopeChoices},
				{Name: "conference_mode", Label: "Conference Mode", Type: TypeEnum, Choices: modeChoices},
				{Name: "registration_fee_reimbursed", Label: "Registration Fee Reimbursed", Type: TypeBool},
				{Name: "special_leave_dates", Label: "Special Leave Dates", Type: TypeText, MaxLen: 100},
				{Name: "certificate_link", Label: "Certificate Link", Type: TypeURL, Help: "Google Drive link to certificate"},
			},
		},
		{
			ID: "T2.1", Name: "Workshops Attended", Audience: AudienceFaculty,
			Fields: []FieldDescriptor{
				{Name: "program_name", Label: "Program Name", Type: TypeText, Required: true, MaxLen: 255, Filter: true, Help: "Name of the FDP/STTP/Workshop"},
				{Name: "organizer", Label: "Organizer", Type: TypeText, Required: true, MaxLen: 255},
				{Name: "place", Label: "Place", Type: TypeText, Required: true, MaxLen: 200},
				{Name: "start_date", Label: "Start Date", Type: TypeDate, Required: true},
				{Name: "end_date", Label: "End Date", Type: TypeDate, Required: true},
				{Name: "num_days", Label: "Number Of Days", Type: TypeInt, Required: true},
				{Name: "mode", Label: "Mode", Type: TypeEnum, Choices: modeChoices},
				{Name: "registration_fee_reimbursed", Label: "Registration Fee Reimbursed", Type: TypeBool},
				{Name: "special_leave_dates", Label: "Special Leave Dates", Type: TypeText, MaxLen: 100},
				{Name: "certificate_link", Label: "Certificate Link", Type: TypeURL},
			},
		},
		{
			ID: "T2.2", Name: "Workshops Organized", Audience: AudienceFaculty,
			Fields: []FieldDescriptor{
				{Name: "role", Label: "Role", Type: TypeEnum, Choices: []string{"Coordinator", "Co-Coordinator"}},
				{Name: "activity_type", Label: "Activity Type", Type: TypeText, Required: true, MaxLen: 100, Help: "FDP/Workshop/STTP etc."},
				{Name: "program_name", Label: "Program Name", Type: TypeText, Required: true, MaxLen: 255, Filter: true},
				{Name: "organized_by_dept", Label: "Organizing Department", Type: TypeText, Required: true, MaxLen: 200},
				{Name: "place", Label: "Place", Type: TypeText, Required: true, MaxLen: 200},
				{Name: "start_date", Label: "Start Date", Type: TypeDate, Required: true},
				{Name: "end_date", Label: "End Date", Type: TypeDate, Required: true},
				{Name: "num_days", Label: "Number Of Days", Type: TypeInt, Required: true},
				{Name: "mode", Label: "Mode", Type: TypeEnum, Choices: modeChoices},
				{Name: "num_participants", Label: "Number Of Participants", Type: TypeInt, Required: true},
				{Name: "collaborator", Label: "Collaborator", Type: TypeText, MaxLen: 255},
				{Name: "report_link", Label: "Report Link", Type: TypeURL},
			},
		},
		{
			ID: "T3.1", Name: "Book Publications", Audience: AudienceFaculty,
			Fields: []FieldDescriptor{
				{Name: "book_title", Label: "Book Title", Type: TypeText, Required: true, MaxLen: 255, Filter: true, Help: "Title of the Book/Monograph"},
				{Name: "author_type", Label: "Author Type", Type: TypeEnum, Choices: coAuthorChoices},
				{Name: "publisher_details", Label: "Publisher Details", Type: TypeLongText, Required: true, Help: "Publisher with complete address"},
				{Name: "isbn_number", Label: "ISSN/ISBN No", Type: TypeText, Required: true, MaxLen: 50},
				{Name: "indexing", Label: "Indexing", Type: TypeText, MaxLen: 100, Help: "Scopus/Others"},
				{Name: "publication_year", Label: "Publication Year", Type: TypeInt, Required: true},
				{Name: "print_mode", Label: "Print Mode", Type: TypeEnum, Choices: []string{"Hardcopy", "E-print", "Both"}},
				{Name: "book_type", Label: "Book Type", Type: TypeEnum, Choices: scopeChoices},
				{Name: "proof_link", Label: "Proof Link", Type: TypeURL, Help: "Google Drive link to proof"},
			},
		},
		{
			ID: "T3.2", Name: "Chapter Publications", Audience: AudienceFaculty,
			Fields: []FieldDescriptor{
				{Name: "chapter_title", Label: "Chapter Title", Type: TypeText, Required: true, MaxLen: 255, Filter: true},
				{Name: "author_type", Label: "Author Type", Type: TypeEnum, Choices: coAuthorChoices},
				{Name: "publisher_details", Label: "Publisher Details", Type: TypeLongText, Required: true},
				{Name: "isbn_number", Label: "ISSN/ISBN No", Type: TypeText, Required: true, MaxLen: 50},
				{Name: "indexing", Label: "Indexing", Type: TypeText, MaxLen: 100},
				{Name: "publication_year", Label: "Publication Year", Type: TypeInt, Required: true},
				{Name: "book_type", Label: "Book Type", Type: TypeEnum, Choices: scopeChoices},
				{Name: "proof_link", Label: "Proof Link", Type: TypeURL},
			},
		},
		{
			ID: "T4.1", Name: "Editorial Board Memberships", Audience: AudienceFaculty,
			Fields: []FieldDescriptor{
				{Name: "title", Label: "Title", Type: TypeText, Required: true, MaxLen: 255, Filter: true, Help: "Title of the Book or Journal"},
				{Name: "role", Label: "Role", Type: TypeEnum, Required: true, Choices: []string{"Editor", "Co-editor", "Member"}},
				{Name: "publisher", Label: "Publisher", Type: TypeText, Required: true, MaxLen: 255},
				{Name: "issn_isbn", Label: "ISSN/ISBN No", Type: TypeText, Required: true, MaxLen: 50},
				{Name: "indexing", Label: "Indexing", Type: TypeEnum, Required: true, Choices: []string{"WoS", "Scopus", "UGC CARE", "Others"}},
				{Name: "type", Label: "Type Of Book/Journal", Type: TypeEnum, Required: true, Choices: scopeChoices},
				{Name: "proof_link", Label: "Proof Link", Type: TypeURL},
			},
		},
		{
			ID: "T4.2", Name: "Reviewer Details", Audience: AudienceFaculty,
			Fields: []FieldDescriptor{
				{Name: "publication_type", Label: "Publication Type", Type: TypeEnum, Required: true, Choices: []string{"Journal", "Conference", "Book", "Other"}},
				{Name: "title", Label: "Title", Type: TypeText, Required: true, MaxLen: 255, Filter: true},
				{Name: "indexing", Label: "Indexing", Type: TypeEnum, Required: true, Choices: []string{"SCI", "Scopus", "UGC CARE", "Others"}},
				{Name: "issn_isbn", Label: "ISSN/ISBN No", Type: TypeText, Required: true, MaxLen: 50},
				{Name: "publisher", Label: "Publisher", Type: TypeText, Required: true, MaxLen: 255},
				{Name: "type", Label: "Type", Type: TypeEnum, Required: true, Choices: scopeChoices},
				{Name: "proof_link", Label: "Proof Link", Type: TypeURL},
			},
		},
		{
			ID: "T4.3", Name: "Committee Memberships", Audience: AudienceFaculty,
			Fields: []FieldDescriptor{
				{Name: "body_details", Label: "Body Details", Type: TypeText, Required: true, MaxLen: 255, Filter: true, Help: "Details of the body/committee"},
				{Name: "responsibility", Label: "Responsibility", Type: TypeEnum, Required: true, Choices: []string{"Chairperson", "Member"}},
				{Name: "level", Label: "Level", Type: TypeEnum, Required: true, Choices: levelChoices},
				{Name: "other_details", Label: "Other Details", Type: TypeLongText},
				{Name: "proof_link", Label: "Proof Link", Type: TypeURL},
			},
		},
		{
			ID: "T5.1", Name: "Patent Details", Audience: AudienceFaculty,
			Fields: []FieldDescriptor{
				{Name: "title", Label: "Title", Type: TypeText, Required: true, MaxLen: 255, Filter: true},
				{Name: "internal_co_inventors", Label: "Internal Co-Inventors", Type: TypeLongText},
				{Name: "external_co_inventors", Label: "External Co-Inventors", Type: TypeLongText},
				{Name: "ipr_type", Label: "Type Of IPR", Type: TypeEnum, Required: true, Choices: []string{"Utility", "Process", "Design", "Copyright", "Trademark", "Other"}},
				{Name: "application_number", Label: "Application Number", Type: TypeText, MaxLen: 100},
				{Name: "status", Label: "Status", Type: TypeEnum, Required: true, Choices: []string{"Filed", "Published", "Granted"}},
				{Name: "filled_date", Label: "Filed Date", Type: TypeDate},
				{Name: "published_granted_date", Label: "Published/Granted Date", Type: TypeDate},
				{Name: "publication_number", Label: "Publication/Granted Number", Type: TypeText, MaxLen: 100},
				{Name: "technology_transfer", Label: "Technology Transfer", Type: TypeBool},
				{Name: "country", Label: "Country Of Patent", Type: TypeText, MaxLen: 100},
				{Name: "proof_link", Label: "Proof Link", Type: TypeURL},
			},
		},
		{
			ID: "T5.2", Name: "Sponsored Projects", Audience: AudienceFaculty,
			Fields: []FieldDescriptor{
				{Name: "principal_investigator", Label: "Principal Investigator", Type: TypeText, Required: true, MaxLen: 200, Filter: true},
				{Name: "co_principal_investigator", Label: "Co-Principal Investigator", Type: TypeText, MaxLen: 200},
				{Name: "members", Label: "Members", Type: TypeLongText},
				{Name: "funding_agency", Label: "Funding Agency", Type: TypeText, Required: true, MaxLen: 255},
				{Name: "project_title", Label: "Project Title", Type: TypeText, Required: true, MaxLen: 255, Filter: true},
				{Name: "sanctioned_order_no", Label: "Sanctioned Order No", Type: TypeText, MaxLen: 100},
				{Name: "sanctioned_date", Label: "Sanctioned Date", Type: TypeDate},
				{Name: "status", Label: "Status", Type: TypeEnum, Required: true, Choices: statusChoices},
				{Name: "completion_date", Label: "Completion Date", Type: TypeDate, Help: "If completed"},
				{Name: "sanctioned_amount_lakhs", Label: "Sanctioned Amount (Lakhs)", Type: TypeDecimal, Required: true},
				{Name: "amount_received_rupees", Label: "Amount Received (Rupees)", Type: TypeDecimal, Required: true},
				{Name: "duration", Label: "Duration", Type: TypeEnum, Required: true, Choices: durationChoices},
				{Name: "regionality", Label: "Regionality", Type: TypeEnum, Required: true, Choices: scopeChoices},
				{Name: "proof_link", Label: "Proof Link", Type: TypeURL},
			},
		},
		{
			ID: "T5.3", Name: "Consultancy Projects", Audience: AudienceFaculty,
			Fields: []FieldDescriptor{
				{Name: "internal_faculty", Label: "Internal Faculty", Type: TypeLongText},
				{Name: "external_faculty", Label: "External Faculty", Type: TypeLongText},
				{Name: "client_name", Label: "Client Name", Type: TypeText, Required: true, MaxLen: 255, Filter: true},
				{Name: "title", Label: "Title", Type: TypeText, Required: true, MaxLen: 255, Filter: true, Help: "Title of Consultancy"},
				{Name: "sanctioned_order_no", Label: "Sanctioned Order No", Type: TypeText, MaxLen: 100},
				{Name: "sanctioned_date", Label: "Sanctioned Date", Type: TypeDate},
				{Name: "sanctioned_amount_lakhs", Label: "Sanctioned Amount (Lakhs)", Type: TypeDecimal, Required: true},
				{Name: "amount_received_rupees", Label: "Amount Received (Rupees)", Type: TypeDecimal, Required: true},
				{Name: "status", Label: "Status", Type: TypeEnum, Required: true, Choices: statusChoices},
				{Name: "duration", Label: "Duration", Type: TypeEnum, Required: true, Choices: durationChoices},
				{Name: "regionality", Label: "Regionality", Type: TypeEnum, Required: true, Choices: scopeChoices},
				{Name: "proof_link", Label: "Proof Link", Type: TypeURL},
			},
		},
		{
			ID: "T5.4", Name: "Course Development", Audience: AudienceFaculty,
			Fields: []FieldDescriptor{
				{Name: "course_module_name", Label: "Course/Module Name", Type: TypeText, Required: true, MaxLen: 255, Filter: true, Help: "Name of the Course/e-content/Laboratory Module Developed"},
				{Name: "platform", Label: "Platform", Type: TypeText, Required: true, MaxLen: 255, Help: "Moodle, Gsuite, Media Centre, etc."},
				{Name: "contributory_institute", Label: "Contributory Institute", Type: TypeText, MaxLen: 255},
				{Name: "usage_citation", Label: "Usage And Citation", Type: TypeLongText},
				{Name: "amount_spent", Label: "Amount Spent", Type: TypeDecimal},
				{Name: "launch_date", Label: "Launch Date", Type: TypeDate},
				{Name: "link", Label: "Content Link", Type: TypeURL},
			},
		},
		{
			ID: "T5.5", Name: "Laboratory Development", Audience: AudienceFaculty,
			Fields: []FieldDescriptor{
				{Name: "lab_name", Label: "Laboratory Name", Type: TypeText, Required: true, MaxLen: 255, Filter: true},
				{Name: "major_equipment", Label: "Major Equipment", Type: TypeText, Required: true, MaxLen: 255},
				{Name: "purpose", Label: "Purpose", Type: TypeLongText, Required: true},
				{Name: "equipment_cost", Label: "Equipment Cost", Type: TypeDecimal, Required: true},
				{Name: "proof_link", Label: "Proof Link", Type: TypeURL},
			},
		},
		{
			ID: "T5.6", Name: "Research Guidance", Audience: AudienceFaculty,
			Fields: []FieldDescriptor{
				{Name: "role", Label: "Role", Type: TypeEnum, Required: true, Choices: []string{"Supervisor", "Co-Supervisor"}},
				{Name: "candidate_name", Label: "Candidate Name", Type: TypeText, Required: true, MaxLen: 200, Filter: true},
				{Name: "enrollment_number", Label: "Enrollment No", Type: TypeText, Required: true, MaxLen: 100},
				{Name: "thesis_title", Label: "Thesis Title", Type: TypeText, Required: true, MaxLen: 255, Filter: true},
				{Name: "registration_date", Label: "Registration Date", Type: TypeDate, Required: true},
				{Name: "viva_voce_date", Label: "Viva-Voce Date", Type: TypeDate, Required: true},
				{Name: "external_examiner_details", Label: "External Examiner Details", Type: TypeLongText, Required: true},
				{Name: "status", Label: "Status", Type: TypeEnum, Required: true, Choices: statusChoices},
				{Name: "research_center", Label: "Research Center", Type: TypeText, Required: true, MaxLen: 255},
				{Name: "conferring_university", Label: "Conferring University", Type: TypeText, Required: true, MaxLen: 255},
				{Name: "proof_link", Label: "Proof Link", Type: TypeURL, Help: "For Ongoing: RDC Letter; for Completed: Notification Letter"},
			},
		},
		{
			ID: "T6.1", Name: "Certification Courses", Audience: AudienceFaculty,
			Fields: []FieldDescriptor{
				{Name: "certification_course", Label: "Certification Course", Type: TypeText, Required: true, MaxLen: 255},
				{Name: "course_name", Label: "Course Name", Type: TypeText, Required: true, MaxLen: 255, Filter: true},
				{Name: "category", Label: "Category", Type: TypeText, Required: true, MaxLen: 255, Help: "Category of the Course (e.g. CSE, ECE, etc.)"},
				{Name: "duration", Label: "Duration", Type: TypeText, Required: true, MaxLen: 100},
				{Name: "credit_points", Label: "Credit Points", Type: TypeText, Required: true, MaxLen: 50},
				{Name: "certification_type", Label: "Certification Type", Type: TypeEnum, Required: true, Choices: certTypeChoices},
				{Name: "certificate_link", Label: "Certificate Link", Type: TypeURL},
			},
		},
		{
			ID: "T6.2", Name: "Professional Body Memberships", Audience: AudienceFaculty,
			Fields: []FieldDescriptor{
				{Name: "institution_name", Label: "Institution Name", Type: TypeText, Required: true, MaxLen: 255, Filter: true, Help: "Name of Institution/Society"},
				{Name: "membership_grade", Label: "Membership Grade", Type: TypeText, Required: true, MaxLen: 100},
				{Name: "membership_number", Label: "Membership Number", Type: TypeText, Required: true, MaxLen: 100},
				{Name: "year_of_election", Label: "Year Of Election", Type: TypeInt, Required: true},
				{Name: "proof_link", Label: "Proof Link", Type: TypeURL},
			},
		},
		{
			ID: "T6.3", Name: "Awards", Audience: AudienceFaculty,
			Fields: []FieldDescriptor{
				{Name: "award_name", Label: "Award Name", Type: TypeText, Required: true, MaxLen: 255, Filter: true},
				{Name: "conferred_by", Label: "Conferred By", Type: TypeText, Required: true, MaxLen: 255},
				{Name: "award_date", Label: "Award Date", Type: TypeDate, Required: true},
				{Name: "award_type", Label: "Award Type", Type: TypeEnum, Required: true, Choices: scopeChoices},
				{Name: "proof_link", Label: "Proof Link", Type: TypeURL},
			},
		},
		{
			ID: "T6.4", Name: "Resource Person Engagements", Audience: AudienceFaculty,
			Fields: []FieldDescriptor{
				{Name: "invited_by", Label: "Invited By", Type: TypeText, Required: true, MaxLen: 255},
				{Name: "lecture_title", Label: "Lecture Title", Type: TypeText, Required: true, MaxLen: 255, Filter: true},
				{Name: "date", Label: "Lecture Date", Type: TypeDate, Required: true},
				{Name: "duration_hours", Label: "Duration (Hours)", Type: TypeDecimal, Required: true},
				{Name: "proof_link", Label: "Proof Link", Type: TypeURL},
			},
		},
		{
			ID: "T6.5", Name: "AICTE Initiatives", Audience: AudienceFaculty,
			Fields: []FieldDescriptor{
				{Name: "initiative_name", Label: "Initiative Name", Type: TypeText, Required: true, MaxLen: 500, Filter: true, Help: "e.g. Clean & Smart Campus, Smart India Hackathon"},
				{Name: "date", Label: "Initiative Date", Type: TypeDate, Required: true},
				{Name: "role", Label: "Role", Type: TypeText, Required: true, MaxLen: 100},
				{Name: "organizing_institute", Label: "Organizing Institute", Type: TypeText, Required: true, MaxLen: 255},
				{Name: "proof_link", Label: "Proof Link", Type: TypeURL},
			},
		},
		{
			ID: "T7.1", Name: "Programs Organized", Audience: AudienceFaculty,
			Fields: []FieldDescriptor{
				{Name: "organizer_name", Label: "Organizer Name", Type: TypeText, Required: true, MaxLen: 255, Filter: true, Help: "Name of the Organizer (Club/Professional Body)"},
				{Name: "event_name", Label: "Event Name", Type: TypeText, Required: true, MaxLen: 255, Filter: true},
				{Name: "event_type", Label: "Event Type", Type: TypeText, Required: true, MaxLen: 255},
				{Name: "start_date", Label: "Start Date", Type: TypeDate, Required: true},
				{Name: "end_date", Label: "End Date", Type: TypeDate, Required: true},
				{Name: "num_days", Label: "Number Of Days", Type: TypeInt, Required: true},
				{Name: "mode", Label: "Mode", Type: TypeEnum, Required: true, Choices: modeChoices},
				{Name: "participants_count", Label: "Participants Attended", Type: TypeInt, Required: true},
				{Name: "collaborator_details", Label: "Collaborator Details", Type: TypeLongText},
				{Name: "report_link", Label: "Report Link", Type: TypeURL},
			},
		},
		{
			ID: "S1.1", Name: "Theory Subject Data", Audience: AudienceStudent,
			Fields: []FieldDescriptor{
				{Name: "semester", Label: "Semester", Type: TypeText, Required: true, MaxLen: 10, Help: "e.g. S1, S2"},
				{Name: "name_of_subject", Label: "Name Of Subject", Type: TypeText, Required: true, MaxLen: 255, Filter: true},
				{Name: "subject_code", Label: "Subject Code", Type: TypeText, Required: true, MaxLen: 50},
				{Name: "faculty_name", Label: "Faculty Name", Type: TypeText, Required: true, MaxLen: 200, Filter: true, Help: "Faculty who conducted the classes"},
				{Name: "num_classes", Label: "Classes Conducted", Type: TypeInt, Required: true},
				{Name: "num_students_appeared", Label: "Students Appeared", Type: TypeInt, Required: true},
				{Name: "num_students_passed", Label: "Students Passed", Type: TypeInt, Required: true},
				{Name: "pass_percent", Label: "Pass Percentage", Type: TypeDecimal, Required: true},
				{Name: "pass_percent_rv", Label: "Pass Percentage After RV", Type: TypeDecimal, Required: true},
				{Name: "prev_year_pass_percent", Label: "Previous Year Pass Percentage", Type: TypeDecimal, Required: true},
			},
		},
		{
			ID: "S2.1", Name: "Student Journal Articles", Audience: AudienceStudent,
			Fields: []FieldDescriptor{
				{Name: "title", Label: "Title", Type: TypeText, Required: true, MaxLen: 255, Filter: true},
				{Name: "author_type", Label: "Author Type", Type: TypeEnum, Required: true, Choices: authorTypeChoices},
				{Name: "internal_authors", Label: "Internal Authors", Type: TypeLongText, Required: true},
				{Name: "external_authors", Label: "External Authors", Type: TypeLongText, Required: true},
				{Name: "journal_name", Label: "Journal Name", Type: TypeText, Required: true, MaxLen: 255, Filter: true},
				{Name: "volume", Label: "Volume", Type: TypeText, MaxLen: 50},
				{Name: "issue", Label: "Issue", Type: TypeText, MaxLen: 50},
				{Name: "page_numbers", Label: "Page Numbers", Type: TypeText, MaxLen: 100},
				{Name: "month_year", Label: "Month & Year", Type: TypeText, Required: true, MaxLen: 50},
				{Name: "issn_number", Label: "ISSN Number", Type: TypeText, MaxLen: 50},
				{Name: "impact_factor", Label: "Impact Factor", Type: TypeDecimal},
				{Name: "publisher", Label: "Publisher", Type: TypeText, MaxLen: 255},
				{Name: "is_wos", Label: "Web Of Science", Type: TypeBool},
				{Name: "is_scopus", Label: "Scopus", Type: TypeBool},
				{Name: "is_ugc_care", Label: "UGC CARE", Type: TypeBool},
				{Name: "other_indexing", Label: "Other Indexing", Type: TypeText, MaxLen: 255},
				{Name: "doi", Label: "DOI", Type: TypeText, MaxLen: 255},
				{Name: "proof_link", Label: "Proof Link", Type: TypeURL},
			},
		},
		{
			ID: "S2.2", Name: "Student Conference Papers", Audience: AudienceStudent,
			Fields: []FieldDescriptor{
				{Name: "title", Label: "Title", Type: TypeText, Required: true, MaxLen: 255, Filter: true},
				{Name: "author_type", Label: "Author Type", Type: TypeEnum, Required: true, Choices: authorTypeChoices},
				{Name: "internal_authors", Label: "Internal Authors", Type: TypeLongText, Required: true},
				{Name: "external_authors", Label: "External Authors", Type: TypeLongText, Required: true},
				{Name: "conference_details", Label: "Conference Details", Type: TypeText, Required: true, MaxLen: 255, Help: "Organization/Institution name, Place, State"},
				{Name: "isbn_issn", Label: "ISBN/ISSN", Type: TypeText, MaxLen: 50},
				{Name: "publisher", Label: "Publisher", Type: TypeText, MaxLen: 255},
				{Name: "page_numbers", Label: "Page No", Type: TypeText, MaxLen: 100},
				{Name: "month_year", Label: "Month & Year", Type: TypeText, Required: true, MaxLen: 50},
				{Name: "is_scopus", Label: "Scopus Indexed", Type: TypeBool},
				{Name: "other_indexing", Label: "Other Indexing", Type: TypeText, MaxLen: 255},
				{Name: "conference_status", Label: "Conference Status", Type: TypeEnum, Required: true, Choices: scopeChoices},
				{Name: "mode", Label: "Mode", Type: TypeEnum, Required: true, Choices: modeChoices},
				{Name: "proof_link", Label: "Proof Link", Type: TypeURL},
			},
		},
		{
			ID: "S2.3", Name: "Student Sponsored Projects", Audience: AudienceStudent,
			Fields: []FieldDescriptor{
				{Name: "student_name", Label: "Student Name", Type: TypeText, Required: true, MaxLen: 200, Filter: true},
				{Name: "semester", Label: "Semester", Type: TypeText, Required: true, MaxLen: 10},
				{Name: "project_title", Label: "Project Title", Type: TypeText, Required: true, MaxLen: 255, Filter: true},
				{Name: "sponsored_by", Label: "Sponsored By", Type: TypeText, Required: true, MaxLen: 255},
				{Name: "guide_name", Label: "Guide Name", Type: TypeText, Required: true, MaxLen: 200},
				{Name: "proof_link", Label: "Proof Link", Type: TypeURL},
			},
		},
		{
			ID: "S3.1", Name: "Competition Participation", Audience: AudienceStudent,
			Fields: []FieldDescriptor{
				{Name: "student_name", Label: "Student Name", Type: TypeText, Required: true, MaxLen: 200, Filter: true},
				{Name: "semester", Label: "Semester", Type: TypeText, Required: true, MaxLen: 10},
				{Name: "activity_type", Label: "Activity Type", Type: TypeText, Required: true, MaxLen: 255, Filter: true, Help: "Sports/Cultural etc."},
				{Name: "organized_by", Label: "Organized By", Type: TypeText, Required: true, MaxLen: 255},
				{Name: "date", Label: "Participation Date", Type: TypeDate, Required: true},
				{Name: "level", Label: "Level", Type: TypeEnum, Required: true, Choices: scopeChoices},
				{Name: "awards", Label: "Awards", Type: TypeText, MaxLen: 255},
				{Name: "proof_link", Label: "Proof Link", Type: TypeURL},
			},
		},
		{
			ID: "S3.2", Name: "Department Programs", Audience: AudienceStudent,
			Fields: []FieldDescriptor{
				{Name: "program_name", Label: "Program Name", Type: TypeText, Required: true, MaxLen: 255, Filter: true},
				{Name: "participants_count", Label: "Number Of Participants", Type: TypeInt, Required: true},
				{Name: "program_type", Label: "Program Type", Type: TypeText, Required: true, MaxLen: 255},
				{Name: "external_agency", Label: "External Agency", Type: TypeText, MaxLen: 255},
				{Name: "date", Label: "Program Date", Type: TypeDate, Required: true},
				{Name: "level", Label: "Level", Type: TypeEnum, Required: true, Choices: scopeChoices},
				{Name: "proof_link", Label: "Proof Link", Type: TypeURL},
			},
		},
		{
			ID: "S4.1", Name: "Competitive Exam Qualifications", Audience: AudienceStudent,
			Fields: []FieldDescriptor{
				{Name: "student_name", Label: "Student Name", Type: TypeText, Required: true, MaxLen: 200, Filter: true},
				{Name: "batch", Label: "Batch", Type: TypeText, Required: true, MaxLen: 50, Help: "e.g. 2024"},
				{Name: "exam_name", Label: "Exam Name", Type: TypeText, Required: true, MaxLen: 255, Filter: true, Help: "GATE/CAT/GRE/GMAT etc."},
				{Name: "registration_number", Label: "Registration Number", Type: TypeText, Required: true, MaxLen: 100},
				{Name: "score_detail", Label: "AIR/Percentile/Score", Type: TypeText, Required: true, MaxLen: 100},
				{Name: "pg_programme", Label: "PG Programme", Type: TypeText, Required: true, MaxLen: 100},
				{Name: "admission_year", Label: "Admission Year", Type: TypeInt, Required: true},
				{Name: "institution_name", Label: "Institution Joined", Type: TypeText, Required: true, MaxLen: 255},
				{Name: "contact_details", Label: "Contact Details", Type: TypeText, Required: true, MaxLen: 255},
				{Name: "email", Label: "E-mail ID", Type: TypeText, Required: true, MaxLen: 254},
				{Name: "mobile", Label: "Mobile No", Type: TypeText, Required: true, MaxLen: 15},
				{Name: "social_profile_link", Label: "Social Profile Link", Type: TypeURL},
				{Name: "proof_link", Label: "Proof Link", Type: TypeURL},
			},
		},
		{
			ID: "S4.2", Name: "Campus Recruitment", Audience: AudienceStudent,
			Fields: []FieldDescriptor{
				{Name: "student_name", Label: "Student Name", Type: TypeText, Required: true, MaxLen: 200, Filter: true},
				{Name: "batch", Label: "Batch", Type: TypeText, Required: true, MaxLen: 50},
				{Name: "company_name", Label: "Company Name", Type: TypeText, Required: true, MaxLen: 255, Filter: true},
				{Name: "package_offered", Label: "Package Offered", Type: TypeDecimal, Required: true},
				{Name: "offer_ref_number", Label: "Offer Letter Reference Number", Type: TypeText, Required: true, MaxLen: 100},
				{Name: "contact_details", Label: "Contact Details", Type: TypeText, Required: true, MaxLen: 255},
				{Name: "email", Label: "E-mail ID", Type: TypeText, Required: true, MaxLen: 254},
				{Name: "mobile", Label: "Mobile No", Type: TypeText, Required: true, MaxLen: 15},
				{Name: "social_profile_link", Label: "Social Profile Link", Type: TypeURL},
				{Name: "proof_link", Label: "Proof Link", Type: TypeURL},
			},
		},
		{
			ID: "S4.3", Name: "Government/PSU Selections", Audience: AudienceStudent,
			Fields: []FieldDescriptor{
				{Name: "student_name", Label: "Student Name", Type: TypeText, Required: true, MaxLen: 200, Filter: true},
				{Name: "batch", Label: "Batch", Type: TypeText, Required: true, MaxLen: 50},
				{Name: "exam_name", Label: "Exam Name", Type: TypeText, Required: true, MaxLen: 255, Help: "UPSC/CGPSC/SSC etc."},
				{Name: "registration_number", Label: "Registration Number", Type: TypeText, Required: true, MaxLen: 100},
				{Name: "psv_name", Label: "PSU Name", Type: TypeText, Required: true, MaxLen: 255, Filter: true},
				{Name: "package_offered", Label: "Package Offered", Type: TypeDecimal, Required: true},
				{Name: "joining_year", Label: "Joining Year", Type: TypeInt, Required: true},
				{Name: "offer_ref_number", Label: "Joining Letter Reference Number", Type: TypeText, Required: true, MaxLen: 100},
				{Name: "contact_details", Label: "Contact Details", Type: TypeText, Required: true, MaxLen: 255},
				{Name: "email", Label: "E-mail ID", Type: TypeText, Required: true, MaxLen: 254},
				{Name: "mobile", Label: "Mobile No", Type: TypeText, Required: true, MaxLen: 15},
				{Name: "social_profile_link", Label: "Social Profile Link", Type: TypeURL},
				{Name: "proof_link", Label: "Proof Link", Type: TypeURL},
			},
		},
		{
			ID: "S4.4", Name: "Placement & Higher Studies", Audience: AudienceStudent,
			Fields: []FieldDescriptor{
				{Name: "student_roll_no", Label: "Roll No", Type: TypeText, Required: true, MaxLen: 50},
				{Name: "student_name", Label: "Student Name", Type: TypeText, Required: true, MaxLen: 200, Filter: true},
				{Name: "photo_link", Label: "Photo URL", Type: TypeURL},
				{Name: "placement_type", Label: "Placement Type", Type: TypeEnum, Required: true, Choices: []string{"Software", "Core", "PSU", "Other"}},
				{Name: "organization_name", Label: "Organization Name", Type: TypeText, MaxLen: 255, Filter: true},
				{Name: "package_offered", Label: "Package Offered", Type: TypeDecimal},
				{Name: "program_name", Label: "Programme Name", Type: TypeText, MaxLen: 255, Help: "Higher studies programme"},
				{Name: "institution_joined", Label: "Institution Joined", Type: TypeText, MaxLen: 255},
				{Name: "admission_year", Label: "Admission Year", Type: TypeInt},
				{Name: "entrepreneurship", Label: "Entrepreneurship (Company)", Type: TypeText, MaxLen: 255},
				{Name: "email", Label: "E-mail ID", Type: TypeText, Required: true, MaxLen: 254},
				{Name: "contact_details", Label: "Contact Details", Type: TypeText, Required: true, MaxLen: 255},
				{Name: "mobile", Label: "Mobile No", Type: TypeText, Required: true, MaxLen: 15},
				{Name: "social_profile_link", Label: "Social Profile Link", Type: TypeURL},
				{Name: "offer_ref_number", Label: "Joining Letter Reference Number", Type: TypeText, MaxLen: 100},
				{Name: "proof_link", Label: "Proof Link", Type: TypeURL},
			},
		},
		{
			ID: "S5.1", Name: "Student Certification Courses", Audience: AudienceStudent,
			Fields: []FieldDescriptor{
				{Name: "student_name", Label: "Student Name", Type: TypeText, Required: true, MaxLen: 200, Filter: true},
				{Name: "certification_course", Label: "Certification Course", Type: TypeText, Required: true, MaxLen: 255, Filter: true},
				{Name: "category", Label: "Category", Type: TypeText, Required: true, MaxLen: 255},
				{Name: "duration", Label: "Duration", Type: TypeText, Required: true, MaxLen: 100},
				{Name: "credit_points", Label: "Credit Points", Type: TypeText, Required: true, MaxLen: 50},
				{Name: "certification_type", Label: "Certification Type", Type: TypeEnum, Required: true, Choices: certTypeChoices},
				{Name: "certificate_link", Label: "Certificate Link", Type: TypeURL},
			},
		},
		{
			ID: "S5.2", Name: "Vocational Training", Audience: AudienceStudent,
			Fields: []FieldDescriptor{
				{Name: "student_name", Label: "Student Name", Type: TypeText, Required: true, MaxLen: 200, Filter: true},
				{Name: "company_name", Label: "Company Name", Type: TypeText, Required: true, MaxLen: 255, Filter: true},
				{Name: "duration", Label: "Duration", Type: TypeText, Required: true, MaxLen: 100},
				{Name: "certificate_link", Label: "Certificate Link", Type: TypeURL},
			},
		},
		{
			ID: "S5.3", Name: "Special Mention Achievements", Audience: AudienceStudent,
			Fields: []FieldDescriptor{
				{Name: "student_name", Label: "Student/Alumni Name", Type: TypeText, Required: true, MaxLen: 200, Filter: true},
				{Name: "award_name", Label: "Award Name", Type: TypeText, Required: true, MaxLen: 255, Filter: true},
				{Name: "work_title", Label: "Work Title", Type: TypeText, Required: true, MaxLen: 255, Help: "Name of the Work for which Award is received"},
				{Name: "date_received", Label: "Date Received", Type: TypeDate, Required: true},
				{Name: "awarding_organization", Label: "Awarding Organization", Type: TypeText, Required: true, MaxLen: 255},
				{Name: "award_amount", Label: "Award Amount (INR)", Type: TypeDecimal},
				{Name: "award_level", Label: "Award Level", Type: TypeEnum, Required: true, Choices: levelChoices},
				{Name: "proof_link", Label: "Proof Link", Type: TypeURL},
			},
		},
		{
			ID: "S5.4", Name: "Student Entrepreneurship", Audience: AudienceStudent,
			Fields: []FieldDescriptor{
				{Name: "student_name", Label: "Student Name", Type: TypeText, Required: true, MaxLen: 200, Filter: true},
				{Name: "establishment_year", Label: "Year Of Establishment", Type: TypeInt, Required: true},
				{Name: "organization_details", Label: "Organization Details", Type: TypeLongText, Required: true, Help: "Name, Address & Website of Organization"},
				{Name: "sector", Label: "Sector", Type: TypeText, Required: true, MaxLen: 255},
				{Name: "proof_link", Label: "Proof Link", Type: TypeURL},
			},
		},
	}
}

// categoryTable maps the analytics categories to the kinds they cover.
// Membership is disjoint; newRegistry enforces it.
func categoryTable() []Category {
	return []Category{
		{Key: "faculty_research_and_publications", Name: "Faculty Research & Publications", Kinds: []string{"T1.1", "T1.2", "T3.1", "T3.2"}},
		{Key: "faculty_development_and_training", Name: "Faculty Development & Training", Kinds: []string{"T2.1", "T2.2", "T6.1"}},
		{Key: "faculty_professional_services", Name: "Faculty Professional Services", Kinds: []string{"T4.1", "T4.2", "T4.3", "T6.2", "T6.4"}},
		{Key: "faculty_projects_and_innovation", Name: "Faculty Projects & Innovation", Kinds: []string{"T5.1", "T5.2", "T5.3", "T5.4", "T5.5", "T5.6"}},
		{Key: "faculty_awards_and_initiatives", Name: "Faculty Awards & Initiatives", Kinds: []string{"T6.3", "T6.5", "T7.1"}},
		{Key: "student_academics", Name: "Student Academics", Kinds: []string{"S1.1"}},
		{Key: "student_research_and_projects", Name: "Student Research & Projects", Kinds: []string{"S2.1", "S2.2", "S2.3"}},
		{Key: "student_achievements_and_activities", Name: "Student Achievements & Activities", Kinds: []string{"S3.1", "S3.2", "S5.3", "S5.4"}},
		{Key: "student_placements_and_higher_studies", Name: "Student Placements & Higher Studies", Kinds: []string{"S4.1", "S4.2", "S4.3", "S4.4"}},
		{Key: "student_training_and_courses", Name: "Student Training & Courses", Kinds: []string{"S5.1", "S5.2"}},
	}
}
