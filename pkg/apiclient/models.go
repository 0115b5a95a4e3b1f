package apiclient

import "encoding/json"

// Roles issued by the backend.
const (
	RoleUser      = "ROLE_USER"
	RoleRecruiter = "ROLE_RECRUITER"
	RoleAdmin     = "ROLE_ADMIN"
)

// Application statuses.
const (
	StatusApplied  = "APPLIED"
	StatusReviewed = "REVIEWED"
	StatusRejected = "REJECTED"
	StatusAccepted = "ACCEPTED"
)

// Profile vocabulary. The backend stores these as free text.
const (
	CareerStudent      = "Student"
	CareerFresher      = "Fresher"
	CareerProfessional = "Professional"
	CareerManager      = "Manager"

	WorkRemote = "Remote"
	WorkHybrid = "Hybrid"
	WorkOnSite = "On-site"

	EmploymentFullTime   = "Full-time"
	EmploymentPartTime   = "Part-time"
	EmploymentInternship = "Internship"
)

// RegisterRequest is the registration payload. Role defaults to RoleUser and
// Email to "<username>@example.com".
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

type RegisterResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type Experience struct {
	Years     float64  `json:"years"`
	Companies []string `json:"companies,omitempty"`
	Summary   *string  `json:"summary,omitempty"`
}

type Education struct {
	Degree      *string `json:"degree,omitempty"`
	College     *string `json:"college,omitempty"`
	PassingYear *int    `json:"passingYear,omitempty"`
}

type SalaryRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

type Achievement struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Year        *int    `json:"year,omitempty"`
}

// UserProfile is the caller's account plus career profile. Optional fields
// are nil when the backend omits them.
type UserProfile struct {
	ID                  int64         `json:"id"`
	Username            string        `json:"username"`
	Email               string        `json:"email"`
	Role                string        `json:"role"`
	Phone               *string       `json:"phone,omitempty"`
	Bio                 *string       `json:"bio,omitempty"`
	LinkedIn            *string       `json:"linkedin,omitempty"`
	GitHub              *string       `json:"github,omitempty"`
	AvatarDataURL       *string       `json:"avatarDataUrl,omitempty"`
	FullName            *string       `json:"fullName,omitempty"`
	JobTitle            *string       `json:"jobTitle,omitempty"`
	CareerLevel         *string       `json:"careerLevel,omitempty"`
	Experience          []Experience  `json:"experience,omitempty"`
	Education           []Education   `json:"education,omitempty"`
	PreferredLocations  []string      `json:"preferredLocations,omitempty"`
	ExpectedSalaryRange *SalaryRange  `json:"expectedSalaryRange,omitempty"`
	WorkType            *string       `json:"workType,omitempty"`
	EmploymentType      *string       `json:"employmentType,omitempty"`
	Achievements        []Achievement `json:"achievements,omitempty"`
}

// ProfileUpdate is a partial profile. Only non-nil fields are sent.
// Password and Email change account credentials.
type ProfileUpdate struct {
	Password            *string       `json:"password,omitempty"`
	Email               *string       `json:"email,omitempty"`
	Phone               *string       `json:"phone,omitempty"`
	Bio                 *string       `json:"bio,omitempty"`
	LinkedIn            *string       `json:"linkedin,omitempty"`
	GitHub              *string       `json:"github,omitempty"`
	AvatarDataURL       *string       `json:"avatarDataUrl,omitempty"`
	FullName            *string       `json:"fullName,omitempty"`
	JobTitle            *string       `json:"jobTitle,omitempty"`
	CareerLevel         *string       `json:"careerLevel,omitempty"`
	Experience          []Experience  `json:"experience,omitempty"`
	Education           []Education   `json:"education,omitempty"`
	PreferredLocations  []string      `json:"preferredLocations,omitempty"`
	ExpectedSalaryRange *SalaryRange  `json:"expectedSalaryRange,omitempty"`
	WorkType            *string       `json:"workType,omitempty"`
	EmploymentType      *string       `json:"employmentType,omitempty"`
	Achievements        []Achievement `json:"achievements,omitempty"`
}

type UploadResumeResponse struct {
	ID     int64    `json:"id"`
	Skills []string `json:"skills"`
}

type Resume struct {
	ID       int64    `json:"id"`
	Filename string   `json:"filename,omitempty"`
	Content  string   `json:"content,omitempty"`
	Skills   []string `json:"skills,omitempty"`
	UserID   *int64   `json:"userId,omitempty"`
	Extra    `json:"-"`
}

type resumeFields Resume

func (r *Resume) UnmarshalJSON(data []byte) error {
	var known resumeFields
	extra, err := decodeRecord(data, &known)
	if err != nil {
		return err
	}
	*r = Resume(known)
	r.Extra = extra
	return nil
}

func (r Resume) MarshalJSON() ([]byte, error) {
	return encodeRecord(resumeFields(r), r.Extra)
}

// ATSReport is the result of an ATS check. Its shape is backend-defined;
// Score and Suggestions are read when present.
type ATSReport struct {
	ResumeID    *int64   `json:"resumeId,omitempty"`
	Score       *float64 `json:"score,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	Extra       `json:"-"`
}

type atsReportFields ATSReport

func (a *ATSReport) UnmarshalJSON(data []byte) error {
	var known atsReportFields
	extra, err := decodeRecord(data, &known)
	if err != nil {
		return err
	}
	*a = ATSReport(known)
	a.Extra = extra
	return nil
}

func (a ATSReport) MarshalJSON() ([]byte, error) {
	return encodeRecord(atsReportFields(a), a.Extra)
}

// JobPosting is a job record. ID and RecruiterID are assigned by the backend.
type JobPosting struct {
	ID          int64    `json:"id,omitempty"`
	Title       string   `json:"title"`
	Company     string   `json:"company,omitempty"`
	Description string   `json:"description,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	URL         string   `json:"url,omitempty"`
	Location    string   `json:"location,omitempty"`
	JobType     string   `json:"jobType,omitempty"`
	Salary      *float64 `json:"salary,omitempty"`
	RecruiterID *int64   `json:"recruiterId,omitempty"`
	Extra       `json:"-"`
}

type jobPostingFields JobPosting

func (j *JobPosting) UnmarshalJSON(data []byte) error {
	var known jobPostingFields
	extra, err := decodeRecord(data, &known)
	if err != nil {
		return err
	}
	*j = JobPosting(known)
	j.Extra = extra
	return nil
}

func (j JobPosting) MarshalJSON() ([]byte, error) {
	return encodeRecord(jobPostingFields(j), j.Extra)
}

type MatchResult struct {
	MatchPercentage float64  `json:"matchPercentage"`
	MissingSkills   []string `json:"missingSkills"`
	Extra           `json:"-"`
}

type matchResultFields MatchResult

func (m *MatchResult) UnmarshalJSON(data []byte) error {
	var known matchResultFields
	extra, err := decodeRecord(data, &known)
	if err != nil {
		return err
	}
	*m = MatchResult(known)
	m.Extra = extra
	return nil
}

func (m MatchResult) MarshalJSON() ([]byte, error) {
	return encodeRecord(matchResultFields(m), m.Extra)
}

// Application links an applicant to a job posting.
type Application struct {
	ID         int64        `json:"id"`
	User       *UserProfile `json:"user,omitempty"`
	JobPosting *JobPosting  `json:"jobPosting,omitempty"`
	Status     string       `json:"status"`
	Extra      `json:"-"`
}

type applicationFields Application

func (a *Application) UnmarshalJSON(data []byte) error {
	var known applicationFields
	extra, err := decodeRecord(data, &known)
	if err != nil {
		return err
	}
	*a = Application(known)
	a.Extra = extra
	return nil
}

func (a Application) MarshalJSON() ([]byte, error) {
	return encodeRecord(applicationFields(a), a.Extra)
}

type FavoriteToggle struct {
	Favorite bool `json:"favorite"`
}

// Deleted acknowledges a delete with the removed id.
type Deleted struct {
	Deleted int64 `json:"deleted"`
	Extra   `json:"-"`
}

type deletedFields Deleted

func (d *Deleted) UnmarshalJSON(data []byte) error {
	var known deletedFields
	extra, err := decodeRecord(data, &known)
	if err != nil {
		return err
	}
	*d = Deleted(known)
	d.Extra = extra
	return nil
}

func (d Deleted) MarshalJSON() ([]byte, error) {
	return encodeRecord(deletedFields(d), d.Extra)
}

// Message is a plain acknowledgement such as {"message":"Application submitted"}.
type Message struct {
	Message string `json:"message"`
	Extra   `json:"-"`
}

type messageFields Message

func (m *Message) UnmarshalJSON(data []byte) error {
	var known messageFields
	extra, err := decodeRecord(data, &known)
	if err != nil {
		return err
	}
	*m = Message(known)
	m.Extra = extra
	return nil
}

func (m Message) MarshalJSON() ([]byte, error) {
	return encodeRecord(messageFields(m), m.Extra)
}

// Page is the admin listing envelope.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// String returns a pointer to s, for optional fields.
func String(s string) *string { return &s }

func Int(i int) *int { return &i }

func Int64(i int64) *int64 { return &i }

func Float64(f float64) *float64 { return &f }

var _ json.Marshaler = JobPosting{}
