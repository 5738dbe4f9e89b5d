// Package redis implements the record.Provider contract on top of a
// Redis backend. Record fields live in a hash per record and writers
// publish the record id on a notification channel after changing it;
// subscribers re-read the hash and deliver a fresh snapshot on every
// notification.
//
// Key layout, overridable via options:
//
//	record:<id>            hash of qualified field name -> value
//	record.updated         pub/sub channel carrying changed record ids
//
// A read failure is delivered as an Update with Err set, matching the
// provider contract: the subscriber decides how to degrade, and the
// next successful read recovers.
package redis
