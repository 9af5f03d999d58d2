package content

var ValidateEntries = validate
