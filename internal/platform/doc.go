// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package platform describes where the dispatcher is running (the Host) and which shell dialect a
// command should be interpreted by (the Target).
//
// The two are separate types. They only meet in the dispatch table of the shell package, so an
// impossible host/target pair is never a valid value on its own.
//
// Host detection goes through the HostProbe interface. SystemProbe is the real implementation;
// tests substitute a fixed description.
package platform
