package nlp

// StaticPipeline is a scripted Pipeline for tests. It returns the
// configured document for any input, or the error if set.
type StaticPipeline struct {
	Doc *Document
	Err error
}

// Annotate implements Pipeline.
func (s *StaticPipeline) Annotate(string) (*Document, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Doc, nil
}

var _ Pipeline = (*StaticPipeline)(nil)
