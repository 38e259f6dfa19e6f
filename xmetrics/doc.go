/*
Package xmetrics provides configurable metrics infrastructure on top of prometheus,
exposed through go-kit's metrics types.  Packages in this library contribute Module
functions describing the metrics they emit, and hosts preregister those modules
into a Registry at startup.
*/
package xmetrics
