package email

// PreviewData contains sample template data for local preview.
//
//	PreviewData[TemplateNewFollower]["ActorName"] == "Ayşe"
var PreviewData = map[Template]map[string]string{
	TemplateNewFollower: {
		"RecipientName": "Alperen",
		"ActorName":     "Ayşe",
		"ActionURL":     "https://connectlist.me/profile/ayse",
	},
	TemplateListComment: {
		"RecipientName": "Alperen",
		"ActorName":     "Mehmet",
		"Message":       "Great picks, adding two of these to my weekend!",
		"ActionURL":     "https://connectlist.me/list/7f0c2a9e-3a52-4c1e-9a8a-0f4d6f1b2c3d",
	},
	TemplateListLike: {
		"RecipientName": "Alperen",
		"ActorName":     "Zeynep",
		"ActionURL":     "https://connectlist.me/list/7f0c2a9e-3a52-4c1e-9a8a-0f4d6f1b2c3d",
	},
	TemplateTest: {
		"Provider": "resend",
	},
}
