package mailpreview

// Resolve finds the first preview named previewName that can build emailName.
// A preview with the right name but without the email does not end the
// search, so with duplicate names the first registered one that has the
// email wins.
func Resolve(previews []Preview, previewName, emailName string) (Preview, Builder, error) {
	for _, p := range previews {
		if p.Name() != previewName {
			continue
		}
		if b, ok := p.Find(emailName); ok && b != nil {
			return p, b, nil
		}
	}
	return nil, nil, previewNotFound(previewName, emailName)
}
