// Package qnasdk defines the wire types of the ScholarHub Q&A service:
// the uniform response envelope, the typed request bodies accepted by each
// endpoint, and the record shapes returned in envelope data. Clients can
// import this package instead of redeclaring the JSON shapes.
package qnasdk
