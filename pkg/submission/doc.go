// Package submission posts order payloads to the remote order endpoint and
// folds every possible reply, including transport failures, into a Result
// that is either Ok(message) or Err(message).
package submission
