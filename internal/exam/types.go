package exam

// Document is the top-level shape of an exam file.
type Document struct {
	Exam Exam `yaml:"exam" validate:"required"`
}

// Exam describes one exam definition loaded from YAML.
type Exam struct {
	Title       string     `yaml:"title" validate:"required"`
	Institution string     `yaml:"institution" validate:"required"`
	Course      string     `yaml:"course" validate:"required"`
	Edition     string     `yaml:"edition" validate:"required"`
	Date        string     `yaml:"date" validate:"required"`
	Hash        string     `yaml:"hash" validate:"required"`
	Description []string   `yaml:"description" validate:"required,dive,required"`
	Questions   []Question `yaml:"questions" validate:"required,min=1"`

	// Source and Fingerprint are filled in by Load.
	Source      string `yaml:"-"`
	Fingerprint string `yaml:"-"`
}

// HashDelimiter splits the hash template into the parts around the version number.
const HashDelimiter = ","

// Kind distinguishes the two question variants.
type Kind int

const (
	KindUnknown Kind = iota
	KindChoice
	KindOpen
)

// String returns the marker key used for the kind in exam files.
func (k Kind) String() string {
	switch k {
	case KindChoice:
		return markerChoice
	case KindOpen:
		return markerOpen
	default:
		return "unknown"
	}
}

// Question is either a choice question (Correct/Wrong) or an open question (Answer).
type Question struct {
	Kind    Kind
	Prompt  string
	Correct []string
	Wrong   []string
	Answer  string
	Skip    bool
}
