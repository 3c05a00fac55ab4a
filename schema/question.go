package schema

const (
	QuestionCollection = "questions"
)

// Question - one questionnaire entry. The ascending `id` order defines the
// positional mapping to the answer vector.
type Question struct {
	ID       int      `json:"id" bson:"id"`
	Question string   `json:"question" bson:"question"`
	Tags     []string `json:"tags" bson:"tags"`
	MainTag  string   `json:"main_tag,omitempty" bson:"main_tag,omitempty"`
}

// AnsweredQuestion pairs one position of the raw answer vector with the
// question it answers after the id sort has been applied.
type AnsweredQuestion struct {
	QuestionID int
	Tags       []string
	Answered   bool
}

// OfficialQuestions is the questionnaire seeded by the migrate command.
var OfficialQuestions = []Question{
	{ID: 1, Question: "Is anyone scaring, threatening or hurting you or your children?", Tags: []string{"Domestic Violence", "Shelter", "Family"}, MainTag: "Family"},
	{ID: 2, Question: "Every family has fights. What are fights like in your home?", Tags: []string{"Domestic Violence", "Family", "Shelter"}, MainTag: "Family"},
	{ID: 3, Question: "Do you ever skip or cut the dose of a medicine because of cost?", Tags: []string{"Health Insurance", "Low Income"}, MainTag: "Income"},
	{ID: 4, Question: "Do you and your family have health insurance?", Tags: []string{"Health Insurance"}, MainTag: "Family"},
	{ID: 5, Question: "Have you NOT applied for AHCCCS, KidsCare, ACA insurance or other benefits?", Tags: []string{"Health Insurance"}, MainTag: "Family"},
	{ID: 6, Question: "Are you pregnant? If so, have you spoken to anyone about WIC?", Tags: []string{"Family", "Health Insurance", "Public Benefits", "Low Income"}, MainTag: "Women Health"},
	{ID: 7, Question: "If you have applied for assistance and been denied, have you filed an appeal?", Tags: []string{"Public Benefits", "Social Security"}, MainTag: "Income"},
	{ID: 8, Question: "Do you have trouble paying your rent or mortgage?", Tags: []string{"Housing", "Low Income"}, MainTag: "Housing"},
	{ID: 9, Question: "Do you worry about having enough food for your family?", Tags: []string{"Food", "Public Benefits"}, MainTag: "Food"},
	{ID: 10, Question: "Do you need help with a legal matter such as custody or immigration?", Tags: []string{"Legal Aid", "Family"}, MainTag: "Legal"},
}
