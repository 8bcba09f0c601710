package badger

import "fmt"

// Key prefixes for different data types
const (
	documentPrefix     = "invdoc"
	collectionMetaKey  = "invmeta:fingerprint"
	documentKeyPattern = documentPrefix + ":%s"
)

// makeDocumentKey generates a key for a document by id.
func makeDocumentKey(id string) []byte {
	return []byte(fmt.Sprintf(documentKeyPattern, id))
}

// documentIDFromKey recovers the document id from a storage key.
func documentIDFromKey(key []byte) string {
	return string(key[len(documentPrefix)+1:])
}

// makeFingerprintKey generates the key holding the dataset fingerprint.
func makeFingerprintKey() []byte {
	return []byte(collectionMetaKey)
}
